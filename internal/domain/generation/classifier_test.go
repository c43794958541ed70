package generation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/generation"
)

// ──────────────────────────────────────────────────────────────────────────────
// Casos base: descripciones reales de procesadores.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_GeneracionesObsoletas(t *testing.T) {
	casos := []string{
		"Intel Core i5 8th Gen",
		"intel core i3 4ta generación",
		"Core i7 de 7ma gen",
		"i5 gen 8",
		"INTEL CORE I5 9NA GEN",
	}
	for _, c := range casos {
		assert.Equal(t, generation.Obsoleto, generation.Classify(c),
			"la descripción %q debe clasificar como obsoleta", c)
	}
}

func TestClassify_GeneracionesModernas(t *testing.T) {
	casos := []string{
		"Intel Core i7 11va Gen",
		"intel core i5 10ma generación",
		"Core i9 12th gen",
		"i5 gen 12",
		"Intel Core i7 14th Gen", // el "4th" embebido en "14th" no debe disparar obsoleto
	}
	for _, c := range casos {
		assert.Equal(t, generation.Moderno, generation.Classify(c),
			"la descripción %q debe clasificar como moderna", c)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia: el marcador obsoleto se evalúa primero y gana los empates.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_ObsoletoGanaEmpates(t *testing.T) {
	assert.Equal(t, generation.Obsoleto,
		generation.Classify("actualizado de 9na a 10ma gen"),
		"una descripción con marcador obsoleto y moderno debe clasificar obsoleta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Política por defecto: desconocido = moderno.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_DefaultModerno(t *testing.T) {
	casos := []string{
		"",
		"n/a",
		"N/A",
		"nan",
		"   ",
		"amd ryzen 5 5600g",     // no-Intel sin marcador reconocido
		"procesador sin marcar", // texto libre
	}
	for _, c := range casos {
		assert.Equal(t, generation.Moderno, generation.Classify(c),
			"la descripción %q debe caer en el default moderno", c)
	}
}

func TestClassifyValue_EntradasNoString(t *testing.T) {
	assert.Equal(t, generation.Moderno, generation.ClassifyValue(nil),
		"nil equivale a descripción vacía")
	assert.Equal(t, generation.Moderno, generation.ClassifyValue(12),
		"un número suelto no contiene marcadores")
	assert.Equal(t, generation.Obsoleto, generation.ClassifyValue("i5 8va gen"),
		"un string pasa por Classify normal")
}
