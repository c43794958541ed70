// Package generation clasifica descripciones de procesador en generaciones
// modernas u obsoletas según la política de chatarrización de la compañía.
package generation

import (
	"fmt"
	"strings"
)

// Tier resultado de la clasificación de un procesador.
type Tier string

const (
	// Moderno equipo vigente; permanece en los inventarios activos.
	Moderno Tier = "moderno"
	// Obsoleto equipo fuera de política; se enruta a chatarrización.
	Obsoleto Tier = "obsoleto"
)

// Marcadores de generación. Son tablas centrales y únicas: cualquier ajuste al
// vocabulario (nuevas generaciones, nuevos formatos de ordinal) se hace aquí
// y queda cubierto por los tests del paquete.
//
// Los marcadores obsoletos se evalúan PRIMERO y ganan ante cualquier empate:
// una descripción que contenga "9na" y "10ma" a la vez se clasifica obsoleta.
var (
	marcadoresObsoleto = []string{
		"4ta", "4th",
		"5ta", "5th",
		"6ta", "6th",
		"7ma", "7th",
		"8va", "8th",
		"9na", "9th",
		"gen 8", "gen 9",
	}

	marcadoresModerno = []string{
		"10ma", "10th",
		"11va", "11th",
		"12va", "12th",
		"13va", "13th",
		"14va", "14th",
		"gen 10", "gen 11", "gen 12",
	}
)

// Placeholders que significan "procesador no aplica" (periféricos, consumibles).
var sinProcesador = map[string]bool{
	"":    true,
	"n/a": true,
	"nan": true,
}

// Classify determina la generación de un procesador a partir de su descripción
// libre. Normaliza a minúsculas, evalúa primero los marcadores obsoletos y, si
// nada coincide, aplica la política por defecto: moderno.
//
// El default-moderno es una decisión de negocio, no técnica: un procesador
// desconocido o sin etiqueta de generación se asume vigente hasta que alguien
// lo marque explícitamente. Nunca retorna error.
func Classify(procesador string) Tier {
	s := strings.ToLower(strings.TrimSpace(procesador))
	if sinProcesador[s] {
		return Moderno
	}
	for _, m := range marcadoresObsoleto {
		if contieneMarcador(s, m) {
			return Obsoleto
		}
	}
	for _, m := range marcadoresModerno {
		if contieneMarcador(s, m) {
			return Moderno
		}
	}
	return Moderno
}

// ClassifyValue clasifica un valor arbitrario convirtiéndolo antes a string.
// Un nil clasifica como moderno (equivale a descripción vacía).
func ClassifyValue(v any) Tier {
	if v == nil {
		return Moderno
	}
	if s, ok := v.(string); ok {
		return Classify(s)
	}
	return Classify(fmt.Sprintf("%v", v))
}

// contieneMarcador busca el marcador como substring, exigiendo que no venga
// precedido por otro dígito: sin esta guarda "14th gen" contendría "4th" y
// una máquina de 14va generación terminaría clasificada como obsoleta.
func contieneMarcador(s, marcador string) bool {
	for desde := 0; ; {
		i := strings.Index(s[desde:], marcador)
		if i < 0 {
			return false
		}
		pos := desde + i
		if pos == 0 || !esDigito(s[pos-1]) {
			return true
		}
		desde = pos + 1
	}
}

func esDigito(b byte) bool { return b >= '0' && b <= '9' }
