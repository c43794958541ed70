package draft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/draft"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

func item(serial, modelo, equipo string) entity.Movement {
	return entity.Movement{Serial: serial, Modelo: modelo, Equipo: equipo}
}

// ──────────────────────────────────────────────────────────────────────────────
// Llave de identidad
// ──────────────────────────────────────────────────────────────────────────────

func TestIdentityKey_Precedencia(t *testing.T) {
	assert.Equal(t, "abc123", item("abc123", "latitude", "laptop").IdentityKey(),
		"el serial tiene precedencia")
	assert.Equal(t, "latitude", item("", "latitude", "laptop").IdentityKey(),
		"sin serial cae al modelo")
	assert.Equal(t, "laptop", item("", "", "laptop").IdentityKey(),
		"sin serial ni modelo cae al nombre de equipo")
	assert.Equal(t, "", item("", "", "").IdentityKey(),
		"sin ninguno de los tres la llave es vacía")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fusión
// ──────────────────────────────────────────────────────────────────────────────

func TestMerge_LoteVacioEsIdentidad(t *testing.T) {
	vigente := []entity.Movement{item("s1", "", ""), item("s2", "", "")}
	resultado := draft.Merge(vigente, nil)
	assert.Equal(t, vigente, resultado,
		"fusionar un lote vacío deja el borrador idéntico, mismo orden")
}

func TestMerge_MismaLlaveReemplazaFilaCompleta(t *testing.T) {
	primero := entity.Movement{Serial: "s1", Equipo: "laptop", Marca: "hp", RAM: "8gb"}
	segundo := entity.Movement{Serial: "s1", Equipo: "laptop", Marca: "hp", RAM: "16gb"}

	resultado := draft.Merge([]entity.Movement{primero}, []entity.Movement{segundo})
	require.Len(t, resultado, 1, "una sola llave = un solo ítem")
	assert.Equal(t, segundo, resultado[0],
		"el entrante reemplaza la fila completa; nunca fusión campo a campo")
}

func TestMerge_OrdenObservable(t *testing.T) {
	vigente := []entity.Movement{item("a", "", ""), item("b", "", "")}
	entrante := []entity.Movement{item("b", "m2", ""), item("c", "", "")}

	resultado := draft.Merge(vigente, entrante)
	require.Len(t, resultado, 3)
	assert.Equal(t, "a", resultado[0].Serial, "las llaves existentes primero, en su orden")
	assert.Equal(t, "b", resultado[1].Serial, "la llave repetida conserva su posición")
	assert.Equal(t, "m2", resultado[1].Modelo, "…pero con el contenido entrante")
	assert.Equal(t, "c", resultado[2].Serial, "las llaves nuevas al final, en orden de llegada")
}

func TestMerge_ItemsSinLlaveColapsanEnUno(t *testing.T) {
	sinLlave1 := entity.Movement{Observacion: "caja sin marcar"}
	sinLlave2 := entity.Movement{Observacion: "otra caja sin marcar"}

	resultado := draft.Merge([]entity.Movement{sinLlave1}, []entity.Movement{sinLlave2})
	require.Len(t, resultado, 1,
		"a lo sumo un ítem sin llave puede existir en el borrador")
	assert.Equal(t, sinLlave2, resultado[0], "gana el último en llegar")
}

func TestMerge_DuplicadosDentroDelVigenteConservanElUltimo(t *testing.T) {
	viejo := entity.Movement{Serial: "s1", RAM: "4gb"}
	nuevo := entity.Movement{Serial: "s1", RAM: "8gb"}

	resultado := draft.Merge([]entity.Movement{viejo, nuevo}, nil)
	require.Len(t, resultado, 1)
	assert.Equal(t, "8gb", resultado[0].RAM,
		"colisiones dentro del mismo borrador conservan la última aparición")
}
