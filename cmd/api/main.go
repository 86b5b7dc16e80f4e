// Package main is the entry point for the Ventureline API server.
// Its sole responsibility is loading configuration and handing off to app.Run.
// No business logic belongs here.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkordes/ventureline/backend/internal/app"
	"github.com/pkordes/ventureline/backend/internal/config"
)

func main() {
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		// The configured logger doesn't exist yet.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := app.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
