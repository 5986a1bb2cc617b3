package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"msglink/internal/config"
	"msglink/internal/metrics"
	"msglink/internal/qr"
	"msglink/internal/server"
)

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	pages, err := config.LoadPageConfig(cfg.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load page config %s: %v", cfg.ConfigFile, err)
	}

	if cfg.DefaultID == "" {
		slog.Warn("DEFAULT_ID is not set; requests without ?id= will be rejected")
	}

	metrics.Init()

	srv := server.New(cfg, pages)
	srv.RegisterRoutes(qr.SVG)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	slog.Info("server exited")
}
