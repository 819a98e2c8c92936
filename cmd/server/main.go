package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	store, err := repository.NewStore(cfg.DataDir)
	if err != nil {
		slog.Error("open data dir", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	editor := usecase.NewEditor(store.LoadDocument(), store.LoadTemplate(), store, repository.DefaultSaveDelay)

	renderer := infra.NewChromedpRenderer()
	if !renderer.Available() {
		slog.Warn("headless Chrome not found, PDF export disabled until CHROME_PATH is set")
	}
	exporter := usecase.NewExporter(renderer)

	var enricher httpadapter.Enricher
	aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	switch {
	case err == nil:
		enricher = aiClient
		defer aiClient.Close()
	case err == ai.ErrNotConfigured:
		slog.Info("AI enrichment disabled", "reason", "GEMINI_API_KEY not set")
	default:
		slog.Warn("AI enrichment disabled", "error", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "resume-builder",
	})
	app.Use(httpadapter.MetricsMiddleware())
	httpadapter.RegisterMetrics(app)

	h := httpadapter.NewHandler(editor, exporter, store, enricher)
	h.Register(app)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()
	slog.Info("listening", "port", cfg.Port, "data_dir", cfg.DataDir)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	editor.Flush()
	if err := app.Shutdown(); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
