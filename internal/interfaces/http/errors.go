package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/domain"
)

// responderError mapea los errores sentinela del dominio a códigos HTTP.
// Cualquier cosa no mapeada es un 500 genérico.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrSeleccionVacia):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrSesionNoEncontrada), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrBorradorVacio), errors.Is(err, domain.ErrIndiceFueraDeRango):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNPROCESSABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrConflictoAlmacen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STORE_CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrAlmacenInaccesible):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
