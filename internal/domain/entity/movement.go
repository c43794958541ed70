package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/generation"
)

// Categorías de equipo.
const (
	CategoriaComputo    = "cómputo"
	CategoriaPantalla   = "pantalla"
	CategoriaPeriferico = "periférico"
	CategoriaConsumible = "consumible"
)

// Etiquetas fijas de disposición que escribe el motor de reglas.
const (
	EstadoChatarrizacion  = "chatarrización"
	DestinoChatarrizacion = "chatarrización"
	OrigenBodega          = "bodega"
	DestinoBodega         = "bodega"
)

// Movement representa un movimiento de hardware (equipo recibido o enviado),
// tanto en el borrador de sesión como en el histórico persistido. Los tags
// JSON corresponden al esquema del documento del histórico.
//
// Invariante: toda fila normalizada tiene todos los campos presentes; un campo
// sin dato queda como string vacío, nunca ausente.
type Movement struct {
	Categoria     string          `json:"categoria"`
	Tipo          string          `json:"tipo"` // vocabulario recibido/enviado, texto libre normalizado
	Equipo        string          `json:"equipo"`
	Marca         string          `json:"marca"`
	Modelo        string          `json:"modelo"`
	Serial        string          `json:"serial"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	Estado        string          `json:"estado"`
	Procesador    string          `json:"procesador"`
	RAM           string          `json:"ram"`
	Disco         string          `json:"disco"`
	Observacion   string          `json:"observacion"`
	Origen        string          `json:"origen"`
	Destino       string          `json:"destino"`
	Pasillo       string          `json:"pasillo"`
	Estante       string          `json:"estante"`
	Posicion      string          `json:"posicion"`
	Guia          string          `json:"guia"`
	FechaLlegada  string          `json:"fecha_llegada"`
	FechaRegistro string          `json:"fecha_registro"` // se estampa al confirmar el borrador

	// GenCPU es derivado por el clasificador de generación durante la
	// agregación; nunca se persiste directamente.
	GenCPU generation.Tier `json:"-"`
}

// IdentityKey devuelve la llave de deduplicación del borrador: serial, si no
// modelo, si no nombre de equipo (primer campo no vacío, en ese orden).
// Un movimiento sin ninguno de los tres colapsa a la llave vacía, por lo que
// a lo sumo un ítem sin llave puede existir en un borrador.
func (m Movement) IdentityKey() string {
	for _, campo := range []string{m.Serial, m.Modelo, m.Equipo} {
		if k := strings.TrimSpace(campo); k != "" {
			return k
		}
	}
	return ""
}
