package main

import (
	"context"
	"log/slog"
	"os"

	"hrx/internal/platform/config"
	"hrx/internal/platform/db"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	if err := cfg.ValidateSeed(); err != nil {
		logger.Error("seed aborted", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema failed", "error", err)
		os.Exit(1)
	}

	db.Seed(ctx, pool, logger)
	logger.Info("seed run finished")
}
