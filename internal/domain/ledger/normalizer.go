// Package ledger normaliza filas crudas del histórico y de la extracción a la
// fila canónica Movement. Existen dos modos deliberadamente distintos:
//
//   - Modo agregación (ParseRows): todo en minúsculas y recortado, cantidad
//     ilegible → 0, campos sin dato quedan vacíos. El agregador depende de los
//     strings crudos en minúsculas para el match por substring.
//   - Modo borrador (ParseItem / ForDisplay): cantidad ilegible → 1 para que
//     el operador vea una línea corregible, y los vacíos se muestran "N/A".
//
// La asimetría 0/1 es intencional: el 0 evita que una fila ilegible acuñe
// stock en los reportes; el 1 mantiene el ítem visible en el borrador.
package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/generation"
)

// PlaceholderNA valor visible para campos sin dato en el modo borrador.
const PlaceholderNA = "N/A"

// ParseRows convierte las filas crudas de un snapshot del histórico (modo
// agregación). Las entradas que no son objetos JSON se descartan y se cuentan;
// nada se pierde en silencio.
func ParseRows(crudas []any) (filas []entity.Movement, rechazadas int) {
	filas = make([]entity.Movement, 0, len(crudas))
	for _, cruda := range crudas {
		obj, ok := cruda.(map[string]any)
		if !ok {
			rechazadas++
			continue
		}
		filas = append(filas, parseRow(obj, decimal.Zero))
	}
	return filas, rechazadas
}

// ParseItem convierte un ítem crudo del servicio de extracción (modo borrador):
// la cantidad ilegible cae a 1, no a 0.
func ParseItem(crudo map[string]any) entity.Movement {
	return parseRow(crudo, decimal.NewFromInt(1))
}

// ParseItems aplica ParseItem a un lote, descartando y contando entradas que
// no son objetos.
func ParseItems(crudos []any) (items []entity.Movement, rechazadas int) {
	items = make([]entity.Movement, 0, len(crudos))
	for _, c := range crudos {
		obj, ok := c.(map[string]any)
		if !ok {
			rechazadas++
			continue
		}
		items = append(items, ParseItem(obj))
	}
	return items, rechazadas
}

// ForDisplay devuelve una copia con los campos vacíos sustituidos por "N/A".
// Solo para presentación: el agregador nunca debe recibir filas con placeholder.
func ForDisplay(m entity.Movement) entity.Movement {
	campos := []*string{
		&m.Categoria, &m.Tipo, &m.Equipo, &m.Marca, &m.Modelo, &m.Serial,
		&m.Estado, &m.Procesador, &m.RAM, &m.Disco, &m.Observacion,
		&m.Origen, &m.Destino, &m.Pasillo, &m.Estante, &m.Posicion,
		&m.Guia, &m.FechaLlegada, &m.FechaRegistro,
	}
	for _, c := range campos {
		if strings.TrimSpace(*c) == "" {
			*c = PlaceholderNA
		}
	}
	return m
}

// parseRow materializa la fila canónica: claves plegadas, valores en
// minúsculas y recortados, cantidad coercida con el fallback del modo, y
// gen_cpu derivado del procesador. Todo campo existe siempre; sin dato = "".
func parseRow(obj map[string]any, fallbackCantidad decimal.Decimal) entity.Movement {
	celdas := make(map[string]any, len(obj))
	for k, v := range obj {
		celdas[strings.ToLower(strings.TrimSpace(k))] = v
	}

	campo := func(claves ...string) string {
		for _, k := range claves {
			if v, ok := celdas[k]; ok {
				if s := celda(v); s != "" {
					return s
				}
			}
		}
		return ""
	}

	m := entity.Movement{
		Categoria:     campo("categoria", "categoría"),
		Tipo:          campo("tipo", "tipo_movimiento", "movimiento"),
		Equipo:        campo("equipo", "nombre_equipo"),
		Marca:         campo("marca"),
		Modelo:        campo("modelo"),
		Serial:        campo("serial", "serie"),
		Estado:        campo("estado", "condicion", "condición"),
		Procesador:    campo("procesador", "cpu"),
		RAM:           campo("ram", "memoria"),
		Disco:         campo("disco", "almacenamiento"),
		Observacion:   campo("observacion", "observación", "nota"),
		Origen:        campo("origen", "procedencia"),
		Destino:       campo("destino"),
		Pasillo:       campo("pasillo"),
		Estante:       campo("estante"),
		Posicion:      campo("posicion", "posición"),
		Guia:          campo("guia", "guía", "guia_envio"),
		FechaLlegada:  campo("fecha_llegada", "llegada"),
		FechaRegistro: campo("fecha_registro", "registrado"),
	}
	m.Cantidad = ParseCantidad(celdas["cantidad"], fallbackCantidad)
	m.GenCPU = generation.Classify(m.Procesador)
	return m
}

// ParseCantidad coerce un valor arbitrario a cantidad no negativa. Cualquier
// fallo de parseo (o un negativo) cae al fallback del contexto de llamada.
func ParseCantidad(v any, fallback decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", ".")
		parseada, err := decimal.NewFromString(s)
		if err != nil {
			return fallback
		}
		d = parseada
	default:
		parseada, err := decimal.NewFromString(fmt.Sprintf("%v", v))
		if err != nil {
			return fallback
		}
		d = parseada
	}
	if d.IsNegative() {
		return fallback
	}
	return d
}

// celda convierte cualquier valor de celda a su forma string canónica:
// minúsculas y recortada. Los números JSON (float64) enteros pierden el ".0".
func celda(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.ToLower(strings.TrimSpace(s))
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v)))
	}
}
