package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sc2ladder/internal/application"
	"sc2ladder/internal/config"
	"sc2ladder/pkg/logx"
)

// Set with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.NewLogger(os.Stderr, cfg.Log.SlogLevel())
	slog.SetDefault(log)

	if err = application.Run(ctx, log, cfg, version); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}
