package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/chat"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/deletion"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ChatUC     *chat.UseCase
	ReportUC   *stock.ReportUseCase
	DeletionUC *deletion.UseCase
	Assets     ports.AssetLookup
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Chat e intake del borrador
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup := api.Group("/chat")
	chatGroup.Post("/", chatHandler.Turn)
	chatGroup.Get("/:session/draft", chatHandler.Draft)
	chatGroup.Post("/:session/commit", chatHandler.Commit)

	// Reportes derivados del histórico
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/stock", reportHandler.Stock)
	api.Get("/ledger", reportHandler.Ledger)

	// Órdenes de borrado
	deletionHandler := NewDeletionHandler(deps.DeletionUC)
	api.Post("/ledger/delete-orders", deletionHandler.Create)

	// Consulta de activos en el sistema de tickets
	assetsHandler := NewAssetsHandler(deps.Assets)
	api.Get("/assets/:serial", assetsHandler.BySerial)
}
