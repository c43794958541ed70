package stock

import (
	"context"
	"fmt"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
)

// ReportUseCase produce los reportes de stock leyendo un snapshot puntual del
// histórico en cada invocación. Nunca opera sobre copias cacheadas.
type ReportUseCase struct {
	almacen ports.LedgerStore
	nombre  string // nombre del documento del histórico en el almacén
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(almacen ports.LedgerStore, nombre string) *ReportUseCase {
	return &ReportUseCase{almacen: almacen, nombre: nombre}
}

// StockReport lee el snapshot y ejecuta el agregador. Un fallo del almacén se
// propaga tal cual: jamás se responde un reporte vacío por un histórico
// ilegible.
func (uc *ReportUseCase) StockReport(ctx context.Context) (*dto.StockReportDTO, error) {
	crudas, _, err := uc.almacen.Fetch(ctx, uc.nombre)
	if err != nil {
		return nil, fmt.Errorf("reporte de stock: %w", err)
	}

	reporte := Aggregate(crudas)
	return &dto.StockReportDTO{
		Perifericos: reporte.Perifericos,
		BodegaSana:  reporte.BodegaSana,
		Chatarra:    reporte.Chatarra,
		TotalFilas:  len(reporte.Historico),
		Rechazadas:  reporte.Rechazadas,
	}, nil
}

// LedgerPage devuelve una página del histórico normalizado con índices
// posicionales sobre el snapshot completo, para la selección de borrado.
func (uc *ReportUseCase) LedgerPage(ctx context.Context, page dto.PageRequest) (*dto.LedgerPageDTO, error) {
	page.DefaultPage()

	crudas, _, err := uc.almacen.Fetch(ctx, uc.nombre)
	if err != nil {
		return nil, fmt.Errorf("histórico: %w", err)
	}

	reporte := Aggregate(crudas)
	total := len(reporte.Historico)

	desde := page.Offset
	if desde > total {
		desde = total
	}
	hasta := desde + page.Limit
	if hasta > total {
		hasta = total
	}

	filas := make([]dto.LedgerRowDTO, 0, hasta-desde)
	for i := desde; i < hasta; i++ {
		filas = append(filas, dto.LedgerRowDTO{Indice: i, Fila: reporte.Historico[i]})
	}

	return &dto.LedgerPageDTO{
		Filas: filas,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}
