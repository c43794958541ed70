// Package stock deriva las vistas de inventario a partir del histórico de
// movimientos. Todo es recálculo completo sobre un snapshot: no hay estado
// incremental ni persistencia propia.
package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/generation"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/ledger"
)

// Aggregate calcula las tres vistas derivadas sobre las filas crudas de un
// snapshot del histórico:
//
//  1. Saldo corriente de periféricos: cantidad con signo (+recibido, -enviado,
//     0 en otro caso) agrupada por equipo+marca+modelo; solo saldos > 0.
//  2. Bodega sana: destino bodega, no periférico, no dañado, CPU moderna.
//  3. Chatarra: dañado U obsoleto (predicados no excluyentes entre vistas).
//
// La suma de saldos usa decimal, sin coerción con pérdida. Las filas crudas
// que no son objetos se descartan contadas por el normalizador.
func Aggregate(crudas []any) entity.StockReport {
	filas, rechazadas := ledger.ParseRows(crudas)

	perifericos := saldoPerifericos(filas)
	bodega := make([]entity.Movement, 0)
	chatarra := make([]entity.Movement, 0)

	for _, f := range filas {
		periferico := esPeriferico(f)
		danado := esDanado(f)
		obsoleto := f.GenCPU == generation.Obsoleto

		if esHaciaBodega(f) && !periferico && !danado && !obsoleto {
			bodega = append(bodega, f)
		}
		if danado || obsoleto {
			chatarra = append(chatarra, f)
		}
	}

	return entity.StockReport{
		Perifericos: perifericos,
		BodegaSana:  bodega,
		Chatarra:    chatarra,
		Historico:   filas,
		Rechazadas:  rechazadas,
	}
}

// ── Predicados (no excluyentes) ───────────────────────────────────────────────

func esPeriferico(f entity.Movement) bool {
	return ledger.ContieneToken(f.Equipo, ledger.TokensPeriferico)
}

func esDanado(f entity.Movement) bool {
	return ledger.ContieneToken(f.Estado, ledger.TokensDanado)
}

func esHaciaBodega(f entity.Movement) bool {
	return ledger.Fold(f.Destino) == entity.DestinoBodega
}

// ── Saldo de periféricos ──────────────────────────────────────────────────────

type grupoPeriferico struct {
	equipo, marca, modelo string
}

// saldoPerifericos acumula la cantidad con signo por grupo y descarta los
// saldos cero o negativos: lo no positivo no es stock.
func saldoPerifericos(filas []entity.Movement) []entity.StockBalance {
	saldos := make(map[grupoPeriferico]decimal.Decimal)
	for _, f := range filas {
		if !esPeriferico(f) {
			continue
		}
		g := grupoPeriferico{equipo: f.Equipo, marca: f.Marca, modelo: f.Modelo}
		saldos[g] = saldos[g].Add(cantidadConSigno(f))
	}

	resultado := make([]entity.StockBalance, 0, len(saldos))
	for g, saldo := range saldos {
		if !saldo.IsPositive() {
			continue
		}
		resultado = append(resultado, entity.StockBalance{
			Equipo: g.equipo,
			Marca:  g.marca,
			Modelo: g.modelo,
			Saldo:  saldo,
		})
	}

	// Orden estable por grupo para que el reporte sea determinista.
	sort.Slice(resultado, func(i, j int) bool {
		a, b := resultado[i], resultado[j]
		if a.Equipo != b.Equipo {
			return a.Equipo < b.Equipo
		}
		if a.Marca != b.Marca {
			return a.Marca < b.Marca
		}
		return a.Modelo < b.Modelo
	})
	return resultado
}

// cantidadConSigno aplica la convención de signo: familia recibido suma,
// familia enviado resta, cualquier otro tipo de movimiento no aporta.
func cantidadConSigno(f entity.Movement) decimal.Decimal {
	switch {
	case ledger.ContieneToken(f.Tipo, ledger.TokensRecibido):
		return f.Cantidad
	case ledger.ContieneToken(f.Tipo, ledger.TokensEnviado):
		return f.Cantidad.Neg()
	default:
		return decimal.Zero
	}
}
