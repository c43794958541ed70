package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/chat"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/deletion"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/ports"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/session"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/application/stock"
	infraai "github.com/Soporte1jaher/inventario-jaher-sub000/internal/infrastructure/ai"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/infrastructure/githubstore"
	"github.com/Soporte1jaher/inventario-jaher-sub000/internal/infrastructure/glpi"
	httpRouter "github.com/Soporte1jaher/inventario-jaher-sub000/internal/interfaces/http"
	"github.com/Soporte1jaher/inventario-jaher-sub000/pkg/config"
	"github.com/Soporte1jaher/inventario-jaher-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén del histórico (documento JSON en repositorio git)
	almacen := githubstore.NewStore(githubstore.Config{
		Owner:  cfg.Almacen.Owner,
		Repo:   cfg.Almacen.Repo,
		Branch: cfg.Almacen.Branch,
		Token:  cfg.Almacen.Token,
	})
	despachador := githubstore.NewOrderDispatcher(almacen, cfg.Almacen.OrdersDir)

	// Servicio de extracción según proveedor configurado
	var extractor ports.ExtractionService
	switch cfg.AI.Provider {
	case "anthropic":
		extractor = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		extractor = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	glpiClient := glpi.NewClient(glpi.Config{
		BaseURL:   cfg.GLPI.BaseURL,
		AppToken:  cfg.GLPI.AppToken,
		UserToken: cfg.GLPI.UserToken,
	})

	sesiones := session.NewStore()
	chatUC := chat.NewUseCase(sesiones, extractor, almacen, cfg.Almacen.LedgerFile, cfg.AI.Lecciones, log)
	reportUC := stock.NewReportUseCase(almacen, cfg.Almacen.LedgerFile)
	deletionUC := deletion.NewUseCase(almacen, despachador, cfg.Almacen.LedgerFile)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChatUC:     chatUC,
		ReportUC:   reportUC,
		DeletionUC: deletionUC,
		Assets:     glpiClient,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
