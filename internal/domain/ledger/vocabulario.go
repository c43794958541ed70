package ledger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vocabularios del negocio. Igual que los marcadores de generación, son tablas
// centrales: las reglas por substring son frágiles ante vocabulario nuevo, así
// que viven en un solo artefacto revisable con tests propios.
//
// Todas las entradas están en forma plegada (minúsculas, sin tildes); los
// predicados pliegan la entrada antes de comparar, de modo que "envío" y
// "envio" o "dañado" y "danado" caen en la misma entrada.
var (
	// Familia "recibido": el movimiento suma al saldo.
	TokensRecibido = []string{"recibido", "ingreso", "entrada", "llegada"}

	// Familia "enviado": el movimiento resta del saldo.
	TokensEnviado = []string{"enviado", "salida", "despacho", "envio"}

	// Equipos que cuentan como periférico para el saldo corriente.
	TokensPeriferico = []string{
		"mouse", "teclado", "cable", "hdmi", "limpiador",
		"cargador", "toner", "tinta", "parlante", "herramienta",
	}

	// Estados que marcan una fila como dañada/chatarra.
	TokensDanado = []string{"danado", "obsoleto", "chatarrizacion"}
)

var plegador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un string para comparación de vocabulario: recorta, pasa a
// minúsculas y elimina marcas diacríticas.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	plano, _, err := transform.String(plegador, s)
	if err != nil {
		return s
	}
	return plano
}

// ContieneToken reporta si el valor plegado contiene alguno de los tokens.
func ContieneToken(valor string, tokens []string) bool {
	v := Fold(valor)
	for _, t := range tokens {
		if strings.Contains(v, t) {
			return true
		}
	}
	return false
}
