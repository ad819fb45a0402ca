// Package main is the entry point for the toplana command-line client.
//
// The main package stays minimal. Its job is to:
// 1. Read configuration (env vars, optionally a .env file)
// 2. Create dependencies (logger, snapshot repository, state store)
// 3. Hand control to the command tree
//
// All actual logic lives in imported packages (internal/store, internal/cli,
// internal/repository/...).
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/eraycan/toplana/internal/cli"
	"github.com/eraycan/toplana/internal/config"
	"github.com/eraycan/toplana/internal/repository"
	"github.com/eraycan/toplana/internal/repository/memory"
	"github.com/eraycan/toplana/internal/repository/sqlite"
	"github.com/eraycan/toplana/internal/store"
)

func main() {
	// A .env file is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so command output on stdout stays pipeable.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	// The snapshot database lives under a data directory by default;
	// create it so the sqlite driver doesn't fail on a missing parent.
	repo := openRepository(cfg, logger)

	st, err := store.New(repo, logger)
	if err != nil {
		logger.Error("failed to initialize store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := cli.NewRootCommand(st).Execute(); err != nil {
		// Cobra already printed the error; exit status is all that's left.
		os.Exit(1)
	}
}

// openRepository opens the SQLite snapshot store, falling back to an
// in-memory repository when the database cannot be opened. The app stays
// usable either way; only persistence across runs is lost.
func openRepository(cfg config.Config, logger *slog.Logger) repository.SnapshotRepository {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		logger.Warn("cannot create data directory, state will not persist",
			slog.String("dir", filepath.Dir(cfg.DBPath)),
			slog.String("error", err.Error()),
		)
		return memory.New()
	}

	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Warn("cannot open snapshot database, state will not persist",
			slog.String("path", cfg.DBPath),
			slog.String("error", err.Error()),
		)
		return memory.New()
	}
	return db
}
