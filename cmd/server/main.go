package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/config"
	"resume-builder/internal/document"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"rasterizer", cfg.Rasterizer,
		"render_timeout", cfg.RenderTimeout.String(),
	)

	registry, err := document.NewRegistry()
	if err != nil {
		slog.Error("failed to load layout templates", "error", err)
		os.Exit(1)
	}

	renderer, err := infra.NewRenderer(cfg.Rasterizer, infra.RendererOptions{
		ChromePath: cfg.ChromePath,
		Timeout:    cfg.RenderTimeout,
	})
	if err != nil {
		slog.Error("failed to create rasterizer", "error", err)
		os.Exit(1)
	}

	processor := usecase.NewProcessor(renderer, document.NewAssembler(registry), logger)
	h := httpadapter.NewHandler(processor, logger)
	app := httpadapter.NewApp(h, logger, cfg.BodyLimit)

	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "layouts", registry.Names())
		if err := app.Listen(cfg.Addr()); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RenderTimeout+5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}
