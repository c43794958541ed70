package dto

import "github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"

// StockReportDTO salida del endpoint de reportes: las tres vistas derivadas
// más metadatos del snapshot sobre el que se calcularon.
type StockReportDTO struct {
	Perifericos []entity.StockBalance `json:"perifericos"`
	BodegaSana  []entity.Movement     `json:"bodega_sana"`
	Chatarra    []entity.Movement     `json:"chatarra"`
	TotalFilas  int                   `json:"total_filas"`
	Rechazadas  int                   `json:"rechazadas"`
}

// LedgerPageDTO página del histórico para selección de filas. El índice es
// posicional sobre el snapshot completo: es el que consume la orden de borrado.
type LedgerPageDTO struct {
	Filas []LedgerRowDTO `json:"filas"`
	Page  PageResponse   `json:"page"`
}

// LedgerRowDTO fila del histórico con su índice posicional.
type LedgerRowDTO struct {
	Indice int             `json:"indice"`
	Fila   entity.Movement `json:"fila"`
}
