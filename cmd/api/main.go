package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gcash_checkout/internal/adapter/http/routes"
	"gcash_checkout/internal/infrastructure/config"
	"gcash_checkout/internal/infrastructure/logger"

	"go.uber.org/zap"
)

// @title           GCash Checkout API
// @version         1.0
// @description     Hosted GCash checkout through PayMongo with webhook-driven fulfillment.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
