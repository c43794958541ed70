package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/chat"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/session"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
	"github.com/Soporte1jaher/inventario-jaher-sub000/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type extractorFijo struct {
	resultado *dto.ExtractionResult
	err       error
}

func (e *extractorFijo) ExtractItems(
	context.Context, []dto.ChatMessage, string, []entity.Movement,
) (*dto.ExtractionResult, error) {
	return e.resultado, e.err
}

type almacenMemoria struct {
	agregadas [][]entity.Movement
	errAppend error
}

func (a *almacenMemoria) Fetch(context.Context, string) ([]any, string, error) {
	return nil, "", nil
}
func (a *almacenMemoria) Append(_ context.Context, _ string, filas []entity.Movement, _ string) error {
	if a.errAppend != nil {
		return a.errAppend
	}
	a.agregadas = append(a.agregadas, filas)
	return nil
}
func (a *almacenMemoria) Replace(context.Context, string, []entity.Movement, string) error {
	return nil
}

func nuevoUC(extractor *extractorFijo, almacen *almacenMemoria) (*chat.UseCase, *session.Store) {
	sesiones := session.NewStore()
	uc := chat.NewUseCase(sesiones, extractor, almacen, "historico", "", logger.Nop())
	return uc, sesiones
}

// ──────────────────────────────────────────────────────────────────────────────
// Turnos de chat
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleTurn_FusionaYEtiqueta(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{
		Status: dto.StatusReady,
		Items: []any{
			map[string]any{"equipo": "laptop", "serial": "s1", "procesador": "i5 8th gen"},
		},
		Explanation: "registré la laptop",
	}}
	uc, _ := nuevoUC(extractor, &almacenMemoria{})

	resp, err := uc.HandleTurn(context.Background(), dto.ChatRequest{Message: "llegó una laptop i5 8va gen serial s1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID, "sin session_id se crea una sesión nueva")
	assert.Equal(t, dto.StatusReady, resp.Status)
	require.Len(t, resp.Draft, 1)
	assert.Equal(t, entity.EstadoChatarrizacion, resp.Draft[0].Estado,
		"las reglas de obsolescencia se aplican antes de mostrar el borrador")
	assert.Equal(t, "N/A", resp.Draft[0].Marca,
		"el borrador se presenta con placeholders N/A")
}

func TestHandleTurn_ExtraccionFallidaDegradaAQuestion(t *testing.T) {
	extractor := &extractorFijo{err: errors.New("timeout del modelo")}
	uc, _ := nuevoUC(extractor, &almacenMemoria{})

	resp, err := uc.HandleTurn(context.Background(), dto.ChatRequest{Message: "hola"})
	require.NoError(t, err, "un fallo del extractor jamás es fatal para el usuario")
	assert.Equal(t, dto.StatusQuestion, resp.Status)
	assert.Empty(t, resp.Draft)
}

func TestHandleTurn_SegundoLoteReemplazaPorLlave(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{
		Status: dto.StatusQuestion,
		Items: []any{
			map[string]any{"equipo": "laptop", "serial": "s1", "ram": "8gb", "procesador": "i5 11va gen"},
		},
	}}
	uc, _ := nuevoUC(extractor, &almacenMemoria{})

	primero, err := uc.HandleTurn(context.Background(), dto.ChatRequest{Message: "llegó una laptop"})
	require.NoError(t, err)

	extractor.resultado = &dto.ExtractionResult{
		Status: dto.StatusReady,
		Items: []any{
			map[string]any{"equipo": "laptop", "serial": "s1", "ram": "16gb", "procesador": "i5 11va gen"},
		},
	}
	segundo, err := uc.HandleTurn(context.Background(), dto.ChatRequest{
		SessionID: primero.SessionID, Message: "corrige, es de 16gb",
	})
	require.NoError(t, err)

	require.Len(t, segundo.Draft, 1, "la misma llave no duplica el ítem")
	assert.Equal(t, "16gb", segundo.Draft[0].RAM, "el lote nuevo reemplaza la fila completa")
}

func TestHandleTurn_ItemsMalformadosSeCuentan(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{
		Status: dto.StatusQuestion,
		Items: []any{
			map[string]any{"equipo": "mouse"},
			"no soy un objeto",
		},
	}}
	uc, _ := nuevoUC(extractor, &almacenMemoria{})

	resp, err := uc.HandleTurn(context.Background(), dto.ChatRequest{Message: "llegaron cosas"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Rechazados)
	assert.Len(t, resp.Draft, 1)
}

func TestHandleTurn_MensajeVacio(t *testing.T) {
	uc, _ := nuevoUC(&extractorFijo{}, &almacenMemoria{})
	_, err := uc.HandleTurn(context.Background(), dto.ChatRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmación
// ──────────────────────────────────────────────────────────────────────────────

func sesionConBorrador(t *testing.T, uc *chat.UseCase) string {
	t.Helper()
	resp, err := uc.HandleTurn(context.Background(), dto.ChatRequest{Message: "llegó un teclado"})
	require.NoError(t, err)
	return resp.SessionID
}

func TestCommit_EstampaFechaYLimpiaBorrador(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{
		Status: dto.StatusReady,
		Items:  []any{map[string]any{"equipo": "teclado", "cantidad": float64(2)}},
	}}
	almacen := &almacenMemoria{}
	uc, _ := nuevoUC(extractor, almacen)
	id := sesionConBorrador(t, uc)

	n, err := uc.Commit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, almacen.agregadas, 1)
	assert.NotEmpty(t, almacen.agregadas[0][0].FechaRegistro,
		"fecha_registro se estampa al confirmar")

	borrador, err := uc.Draft(id)
	require.NoError(t, err)
	assert.Empty(t, borrador.Draft, "el borrador se limpia tras confirmar con éxito")
}

func TestCommit_ConflictoNoMutaElBorrador(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{
		Status: dto.StatusReady,
		Items:  []any{map[string]any{"equipo": "teclado"}},
	}}
	almacen := &almacenMemoria{errAppend: domain.ErrConflictoAlmacen}
	uc, _ := nuevoUC(extractor, almacen)
	id := sesionConBorrador(t, uc)

	_, err := uc.Commit(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrConflictoAlmacen, "el conflicto se propaga como retryable")

	borrador, err := uc.Draft(id)
	require.NoError(t, err)
	assert.Len(t, borrador.Draft, 1, "nada se limpia si la escritura falló")
}

func TestCommit_BorradorVacio(t *testing.T) {
	extractor := &extractorFijo{resultado: &dto.ExtractionResult{Status: dto.StatusIdle}}
	uc, _ := nuevoUC(extractor, &almacenMemoria{})
	id := sesionConBorrador(t, uc)

	_, err := uc.Commit(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrBorradorVacio)
}

func TestCommit_SesionInexistente(t *testing.T) {
	uc, _ := nuevoUC(&extractorFijo{}, &almacenMemoria{})
	_, err := uc.Commit(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrSesionNoEncontrada)
}
