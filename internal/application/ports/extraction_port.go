package ports

import (
	"context"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain/entity"
)

// ExtractionService puerto de salida hacia el servicio de extracción de ítems
// (LLM). Cualquier adaptador (Gemini, Anthropic, mock) implementa esta
// interfaz; la aplicación solo conoce el contrato, no la implementación.
//
// El adaptador recibe la conversación completa, el corpus de lecciones y el
// snapshot del borrador vigente, y devuelve un resultado estructurado. El
// contrato de tolerancia es del caller: un resultado ausente o malformado se
// trata como "sin ítems, QUESTION", nunca como error fatal.
type ExtractionService interface {
	ExtractItems(
		ctx context.Context,
		conversacion []dto.ChatMessage,
		lecciones string,
		borrador []entity.Movement,
	) (*dto.ExtractionResult, error)
}
