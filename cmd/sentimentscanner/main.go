package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"SentimentScanner/internal/app"
	"SentimentScanner/internal/config"
	"SentimentScanner/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration rejected", "error", err)
		os.Exit(1)
	}

	logger.Info("starting", "config", cfg.Describe())

	application := app.New(cfg, logger)

	err := application.Run(ctx)
	application.Close()
	if err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
