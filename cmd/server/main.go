package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vango-go/vango"

	"copilot_demo/app/routes"
	"copilot_demo/internal/config"
	"copilot_demo/internal/pages"
	demosvc "copilot_demo/internal/services/demo"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	catalog := pages.DefaultCatalog()
	demoService := demosvc.NewService(catalog, cfg, logger)
	if cfg.PublicAPIKey == "" && cfg.RuntimeURL == "" {
		slog.Info("no startup credential configured; pages start unconfigured")
	}

	app, err := vango.New(vango.Config{
		Session: vango.SessionConfig{
			ResumeWindow: vango.ResumeWindow(cfg.ResumeWindow),
		},
		Static: vango.StaticConfig{
			Dir:    cfg.StaticDir,
			Prefix: "/",
		},
		DevMode: cfg.DevMode,
		Logger:  logger,
	})
	if err != nil {
		slog.Error("failed to create app", "error", err)
		os.Exit(1)
	}

	routes.SetDeps(routes.Deps{
		Demo: demoService,
	})
	routes.Register(app)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	slog.Info("starting server", "addr", addr, "pages", catalog.Slugs())
	if err := app.Run(ctx, addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
