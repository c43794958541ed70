// Package deletion compila selecciones de filas del histórico en órdenes de
// borrado estructuradas para el procesador externo.
package deletion

import (
	"time"

	"github.com/google/uuid"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// SelectedRow una fila elegida junto a su índice posicional dentro del
// snapshot del que se seleccionó.
type SelectedRow struct {
	Indice int
	Fila   entity.Movement
}

// Compile construye la orden a partir de una selección explícita. Una
// selección vacía es un error (domain.ErrSeleccionVacia): nunca se interpreta
// como "borrar todo". La orden lleva, además de los índices, un resumen por
// fila para que el procesador externo pueda auditar contra qué snapshot se
// calculó.
func Compile(seleccion []SelectedRow, instruccion string) (*entity.DeleteOrder, error) {
	if len(seleccion) == 0 {
		return nil, domain.ErrSeleccionVacia
	}

	indices := make([]int, 0, len(seleccion))
	coincidencias := make([]entity.DeleteMatch, 0, len(seleccion))
	for _, s := range seleccion {
		indices = append(indices, s.Indice)
		coincidencias = append(coincidencias, resumen(s))
	}

	return &entity.DeleteOrder{
		ID:            uuid.New().String(),
		Instruccion:   instruccion,
		Total:         len(seleccion),
		Indices:       indices,
		Coincidencias: coincidencias,
		Estado:        entity.OrdenPendiente,
		CreadaEn:      time.Now(),
	}, nil
}

// CompileAll construye explícitamente la orden de "borrar todo": el rango
// completo del snapshot vigente. Es el único camino para una orden total.
func CompileAll(snapshot []entity.Movement, instruccion string) (*entity.DeleteOrder, error) {
	if len(snapshot) == 0 {
		return nil, domain.ErrSeleccionVacia
	}
	seleccion := make([]SelectedRow, 0, len(snapshot))
	for i, f := range snapshot {
		seleccion = append(seleccion, SelectedRow{Indice: i, Fila: f})
	}
	return Compile(seleccion, instruccion)
}

func resumen(s SelectedRow) entity.DeleteMatch {
	return entity.DeleteMatch{
		Indice:        s.Indice,
		Serial:        s.Fila.Serial,
		Guia:          s.Fila.Guia,
		FechaRegistro: s.Fila.FechaRegistro,
		Equipo:        s.Fila.Equipo,
		Marca:         s.Fila.Marca,
		Modelo:        s.Fila.Modelo,
		Origen:        s.Fila.Origen,
		Destino:       s.Fila.Destino,
		Tipo:          s.Fila.Tipo,
		Estado:        s.Fila.Estado,
	}
}
