// Package chat orquesta los turnos de conversación: extracción de ítems,
// fusión al borrador de la sesión, reglas de obsolescencia y confirmación al
// histórico.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/draft"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/session"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/ledger"
	"github.com/Soporte1jaher/inventario-jaher-sub000/pkg/logger"
)

// formato de fecha_registro al confirmar.
const formatoRegistro = "2006-01-02 15:04:05"

// UseCase un turno de chat y la confirmación del borrador. Todas las
// operaciones trabajan sobre la sesión explícita identificada por handle.
type UseCase struct {
	sesiones  *session.Store
	extractor ports.ExtractionService
	almacen   ports.LedgerStore
	nombre    string // documento del histórico
	lecciones string // corpus de lecciones para el prompt de extracción
	log       *logger.Logger
	ahora     func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	sesiones *session.Store,
	extractor ports.ExtractionService,
	almacen ports.LedgerStore,
	nombre, lecciones string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		sesiones:  sesiones,
		extractor: extractor,
		almacen:   almacen,
		nombre:    nombre,
		lecciones: lecciones,
		log:       log,
		ahora:     time.Now,
	}
}

// HandleTurn procesa un mensaje del usuario: llama la extracción con timeout,
// tolera resultados malformados (sin ítems, QUESTION), fusiona el lote al
// borrador, aplica las reglas de obsolescencia y guarda todo en la sesión.
func (uc *UseCase) HandleTurn(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.Message == "" {
		return nil, domain.ErrEntradaInvalida
	}

	ses := uc.sesiones.GetOrCreate(req.SessionID)
	conversacion := append(ses.Historial, dto.ChatMessage{Role: "user", Content: req.Message})

	// Timeout corto: la latencia del LLM no debe bloquear los goroutines del
	// servidor más allá de lo razonable.
	extCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resultado, err := uc.extractor.ExtractItems(extCtx, conversacion, uc.lecciones, ses.Borrador)
	if err != nil {
		// Fallo del servicio de extracción: se degrada a un turno sin ítems,
		// nunca a un error fatal para el usuario.
		uc.log.Warn().Err(err).Str("session", ses.ID).Msg("extracción fallida, turno degradado")
		resultado = &dto.ExtractionResult{
			Status:      dto.StatusQuestion,
			Explanation: "No pude procesar el mensaje, ¿puedes repetir los datos del equipo?",
		}
	}

	items, rechazados := ledger.ParseItems(resultado.Items)
	if rechazados > 0 {
		uc.log.Warn().Int("rechazados", rechazados).Str("session", ses.ID).
			Msg("ítems de extracción descartados por forma inválida")
	}

	fusionado := draft.ApplyObsolescence(draft.Merge(ses.Borrador, items))

	uc.sesiones.Update(ses.ID, func(s *session.Session) {
		s.Historial = append(s.Historial,
			dto.ChatMessage{Role: "user", Content: req.Message},
			dto.ChatMessage{Role: "assistant", Content: resultado.Explanation},
		)
		s.Borrador = fusionado
		s.Estado = resultado.Status
	})

	return &dto.ChatResponse{
		SessionID:   ses.ID,
		Status:      resultado.Status,
		Explanation: resultado.Explanation,
		Draft:       paraMostrar(fusionado),
		Rechazados:  rechazados,
	}, nil
}

// Draft devuelve el borrador vigente de la sesión, en modo presentación.
func (uc *UseCase) Draft(sessionID string) (*dto.ChatResponse, error) {
	ses, ok := uc.sesiones.Get(sessionID)
	if !ok {
		return nil, domain.ErrSesionNoEncontrada
	}
	return &dto.ChatResponse{
		SessionID: ses.ID,
		Status:    ses.Estado,
		Draft:     paraMostrar(ses.Borrador),
	}, nil
}

// Commit agrega el borrador de la sesión al histórico, estampando
// fecha_registro, y lo limpia solo si la escritura tuvo éxito. Un conflicto
// del almacén se propaga como retryable sin mutar el borrador.
func (uc *UseCase) Commit(ctx context.Context, sessionID string) (int, error) {
	ses, ok := uc.sesiones.Get(sessionID)
	if !ok {
		return 0, domain.ErrSesionNoEncontrada
	}
	if len(ses.Borrador) == 0 {
		return 0, domain.ErrBorradorVacio
	}

	registro := uc.ahora().Format(formatoRegistro)
	filas := make([]entity.Movement, len(ses.Borrador))
	copy(filas, ses.Borrador)
	for i := range filas {
		filas[i].FechaRegistro = registro
	}

	mensaje := fmt.Sprintf("registro de %d movimiento(s) desde chat %s", len(filas), ses.ID)
	if err := uc.almacen.Append(ctx, uc.nombre, filas, mensaje); err != nil {
		return 0, fmt.Errorf("confirmar borrador: %w", err)
	}

	uc.sesiones.Update(ses.ID, func(s *session.Session) {
		s.Borrador = nil
		s.Estado = dto.StatusIdle
	})
	uc.log.Info().Str("session", ses.ID).Int("filas", len(filas)).Msg("borrador confirmado al histórico")
	return len(filas), nil
}

// paraMostrar aplica la normalización de presentación a todo el borrador.
func paraMostrar(items []entity.Movement) []entity.Movement {
	visibles := make([]entity.Movement, 0, len(items))
	for _, it := range items {
		visibles = append(visibles, ledger.ForDisplay(it))
	}
	return visibles
}
