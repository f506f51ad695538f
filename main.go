package main

import (
	"context"
	"os"
	"os/signal"

	_ "github.com/lib/pq"

	"rasporedApp/application"
	"rasporedApp/config"
	"rasporedApp/logger"
)

func main() {
	logr := logger.New()

	cfg, err := config.Load()
	if err != nil {
		logr.Fatalf("config load failed: %v", err)
	}

	if err := logr.Initialize(cfg.LogDir, cfg.LogLevel); err != nil {
		logr.Fatalf("logger initialization failed: %v", err)
	}

	logr.Infof("Application starting. LogLevel=%d", cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := application.New()
	if err := app.Configure(cfg, logr); err != nil {
		logr.Fatalf("application configuration failed: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		logr.Fatalf("server stopped with error: %v", err)
	}

	logr.Info("Application stopped")
}
