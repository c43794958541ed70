package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/chat"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
)

// ChatHandler maneja los turnos de conversación y el ciclo de vida del borrador.
type ChatHandler struct {
	uc *chat.UseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *chat.UseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// Turn procesa un mensaje del usuario y responde con el borrador actualizado.
// Body: {"session_id": "...", "message": "..."}; session_id vacío crea sesión.
func (h *ChatHandler) Turn(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.HandleTurn(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Draft devuelve el borrador vigente de la sesión.
func (h *ChatHandler) Draft(c *fiber.Ctx) error {
	resp, err := h.uc.Draft(c.Params("session"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resp)
}

// Commit confirma el borrador al histórico y lo limpia.
func (h *ChatHandler) Commit(c *fiber.Ctx) error {
	n, err := h.uc.Commit(c.Context(), c.Params("session"))
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "borrador confirmado", "filas": n})
}
