package entity

import "github.com/shopspring/decimal"

// StockBalance saldo vigente de un periférico, agrupado por equipo+marca+modelo.
// Solo se reportan saldos estrictamente positivos.
type StockBalance struct {
	Equipo string          `json:"equipo"`
	Marca  string          `json:"marca"`
	Modelo string          `json:"modelo"`
	Saldo  decimal.Decimal `json:"saldo"`
}

// StockReport las tres vistas derivadas del histórico más el histórico
// normalizado. Se recalcula completo en cada invocación del agregador; nunca
// se mantiene incrementalmente ni se persiste por separado.
type StockReport struct {
	Perifericos []StockBalance `json:"perifericos"`  // saldo corriente de periféricos
	BodegaSana  []Movement     `json:"bodega_sana"`  // equipo sano almacenado en bodega
	Chatarra    []Movement     `json:"chatarra"`     // dañado u obsoleto
	Historico   []Movement     `json:"historico"`    // ledger completo normalizado
	Rechazadas  int            `json:"rechazadas"`   // filas crudas descartadas por no ser objetos
}
