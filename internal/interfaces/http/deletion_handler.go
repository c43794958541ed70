package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/deletion"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
)

// DeletionHandler recibe selecciones de filas y despacha órdenes de borrado.
type DeletionHandler struct {
	uc *deletion.UseCase
}

// NewDeletionHandler construye el handler.
func NewDeletionHandler(uc *deletion.UseCase) *DeletionHandler {
	return &DeletionHandler{uc: uc}
}

// Create compila y despacha una orden de borrado. La respuesta confirma solo
// el despacho; la ejecución es fuera de banda y se verifica con un refresh.
func (h *DeletionHandler) Create(c *fiber.Ctx) error {
	var in dto.DeleteOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.RequestDeletion(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.DeleteOrderResponse{
		OrderID: orden.ID,
		Estado:  orden.Estado,
		Total:   orden.Total,
	})
}
