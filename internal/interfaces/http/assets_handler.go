package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
)

// AssetsHandler consulta el sistema de tickets por serial (contexto de
// auditoría, no estado de stock).
type AssetsHandler struct {
	lookup ports.AssetLookup
}

// NewAssetsHandler construye el handler.
func NewAssetsHandler(lookup ports.AssetLookup) *AssetsHandler {
	return &AssetsHandler{lookup: lookup}
}

// BySerial reporta si el serial existe como activo registrado.
func (h *AssetsHandler) BySerial(c *fiber.Ctx) error {
	serial := c.Params("serial")
	if serial == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "serial requerido"})
	}
	encontrado, err := h.lookup.FindBySerial(c.Context(), serial)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"serial": serial, "encontrado": encontrado})
}
