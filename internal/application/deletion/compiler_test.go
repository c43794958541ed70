package deletion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/deletion"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Compilador
// ──────────────────────────────────────────────────────────────────────────────

func TestCompile_SeleccionVaciaEsError(t *testing.T) {
	orden, err := deletion.Compile(nil, "borrar duplicados")
	assert.Nil(t, orden)
	assert.ErrorIs(t, err, domain.ErrSeleccionVacia,
		"una selección vacía jamás se compila, y menos como borrar-todo")
}

func TestCompile_OrdenCompleta(t *testing.T) {
	seleccion := []deletion.SelectedRow{
		{Indice: 3, Fila: entity.Movement{Serial: "s1", Equipo: "laptop", Guia: "g-99", Tipo: "recibido"}},
		{Indice: 7, Fila: entity.Movement{Serial: "s2", Equipo: "mouse"}},
	}

	orden, err := deletion.Compile(seleccion, "eliminar las filas de prueba")
	require.NoError(t, err)

	assert.NotEmpty(t, orden.ID)
	assert.Equal(t, "eliminar las filas de prueba", orden.Instruccion)
	assert.Equal(t, 2, orden.Total)
	assert.Equal(t, []int{3, 7}, orden.Indices, "los índices conservan el orden de selección")
	assert.Equal(t, entity.OrdenPendiente, orden.Estado)

	require.Len(t, orden.Coincidencias, 2)
	assert.Equal(t, 3, orden.Coincidencias[0].Indice)
	assert.Equal(t, "s1", orden.Coincidencias[0].Serial)
	assert.Equal(t, "g-99", orden.Coincidencias[0].Guia)
	assert.Equal(t, "recibido", orden.Coincidencias[0].Tipo)
}

func TestCompileAll_RangoCompletoExplicito(t *testing.T) {
	snapshot := []entity.Movement{{Serial: "a"}, {Serial: "b"}, {Serial: "c"}}

	orden, err := deletion.CompileAll(snapshot, "vaciar el histórico")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, orden.Indices,
		"borrar-todo lista todos los índices de forma explícita")
	assert.Equal(t, 3, orden.Total)
}

func TestCompileAll_SnapshotVacioEsError(t *testing.T) {
	_, err := deletion.CompileAll(nil, "vaciar")
	assert.ErrorIs(t, err, domain.ErrSeleccionVacia)
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso de uso (snapshot + despacho)
// ──────────────────────────────────────────────────────────────────────────────

type almacenFijo struct {
	filas []any
	err   error
}

func (a *almacenFijo) Fetch(context.Context, string) ([]any, string, error) {
	return a.filas, "tok-1", a.err
}
func (a *almacenFijo) Append(context.Context, string, []entity.Movement, string) error { return nil }
func (a *almacenFijo) Replace(context.Context, string, []entity.Movement, string) error {
	return nil
}

type despachoMemoria struct {
	ordenes []*entity.DeleteOrder
	err     error
}

func (d *despachoMemoria) Dispatch(_ context.Context, o *entity.DeleteOrder) error {
	if d.err != nil {
		return d.err
	}
	d.ordenes = append(d.ordenes, o)
	return nil
}

func filasDePrueba() []any {
	return []any{
		map[string]any{"equipo": "laptop", "serial": "s1"},
		map[string]any{"equipo": "mouse", "serial": "s2"},
	}
}

func TestRequestDeletion_DespachaYMarcaDespachada(t *testing.T) {
	despacho := &despachoMemoria{}
	uc := deletion.NewUseCase(&almacenFijo{filas: filasDePrueba()}, despacho, "historico")

	orden, err := uc.RequestDeletion(context.Background(), dto.DeleteOrderRequest{
		Indices:     []int{1},
		Instruccion: "borrar el mouse",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrdenDespachada, orden.Estado,
		"despachada ≠ ejecutada: el estado visible solo llega hasta ahí")
	require.Len(t, despacho.ordenes, 1)
	assert.Equal(t, "s2", despacho.ordenes[0].Coincidencias[0].Serial)
}

func TestRequestDeletion_IndiceFueraDeRango(t *testing.T) {
	uc := deletion.NewUseCase(&almacenFijo{filas: filasDePrueba()}, &despachoMemoria{}, "historico")

	_, err := uc.RequestDeletion(context.Background(), dto.DeleteOrderRequest{Indices: []int{5}})
	assert.ErrorIs(t, err, domain.ErrIndiceFueraDeRango)
}

func TestRequestDeletion_AlmacenInaccesibleSePropaga(t *testing.T) {
	uc := deletion.NewUseCase(&almacenFijo{err: domain.ErrAlmacenInaccesible}, &despachoMemoria{}, "historico")

	_, err := uc.RequestDeletion(context.Background(), dto.DeleteOrderRequest{Todo: true})
	assert.ErrorIs(t, err, domain.ErrAlmacenInaccesible,
		"un almacén ilegible nunca se trata como histórico vacío")
}

func TestRequestDeletion_Todo(t *testing.T) {
	despacho := &despachoMemoria{}
	uc := deletion.NewUseCase(&almacenFijo{filas: filasDePrueba()}, despacho, "historico")

	orden, err := uc.RequestDeletion(context.Background(), dto.DeleteOrderRequest{
		Todo:        true,
		Instruccion: "vaciar",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, orden.Indices)
}
