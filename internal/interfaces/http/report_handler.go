package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/dto"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/stock"
)

// ReportHandler expone las vistas derivadas del histórico.
type ReportHandler struct {
	uc *stock.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *stock.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock devuelve las tres vistas: saldo de periféricos, bodega sana y chatarra.
// Cada llamada lee un snapshot fresco del histórico.
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	reporte, err := h.uc.StockReport(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(reporte)
}

// Ledger devuelve una página del histórico normalizado con índices
// posicionales, la base para seleccionar filas a borrar.
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pagina, err := h.uc.LedgerPage(c.Context(), page)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pagina)
}
