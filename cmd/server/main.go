// Package main implements the entry point for the Shutter Academy API
// server, which serves classes, enrollment, carts and payments for a
// photography school.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shutter-academy/academy-api/internal/config"
	"github.com/shutter-academy/academy-api/internal/platform/logger"
	"github.com/shutter-academy/academy-api/internal/platform/mongodb"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, connects to MongoDB and serves until SIGINT or
// SIGTERM.
func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		disconnect(db, log)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// setupAppDatabase connects to MongoDB and makes sure the indexes exist.
func setupAppDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*mongodb.Database, error) {
	db, err := mongodb.Connect(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	indexCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Database.ConnectTimeoutSeconds)*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx); err != nil {
		disconnect(db, log)
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return db, nil
}

func disconnect(db *mongodb.Database, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Disconnect(ctx); err != nil {
		log.Error("Error closing database connection", "error", err)
	}
}
