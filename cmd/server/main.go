package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/app"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auditlog"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/config"
	"github.com/ShivenPandit/Super-Mall-Web-App/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger, teeing every record into the in-memory
	// audit buffer that backs the admin log viewer.
	auditBuffer := auditlog.NewBuffer(cfg.AuditLogBufferSize)
	log := logger.NewWithHandlers("portal", cfg.LogLevel, os.Stdout,
		auditlog.NewHandler(auditBuffer, logger.ParseLevel(cfg.LogLevel)))
	log.Info("starting portal service",
		slog.String("environment", cfg.Environment),
		slog.Int("http_port", cfg.HTTPPort),
	)

	// Create the application with all dependencies wired.
	application, err := app.NewApp(cfg, log, auditBuffer)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	// Create a context that is canceled on SIGINT or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run the application. This blocks until shutdown.
	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("run application: %w", err)
	}

	log.Info("portal service stopped")
	return nil
}
