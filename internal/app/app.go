package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tarea/internal/database"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskStore *taskservice.Store
	Editor    *taskservice.Editor

	// LoadErr is set when saved tasks could not be restored; the store
	// then started with empty lists for the affected keys.
	LoadErr error

	logger *slog.Logger
}

// New creates a new App and restores the saved task lists.
// This is the single entry point for creating the application container.
func New(ctx context.Context, repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := append([]taskservice.Option{taskservice.WithLogger(cfg.logger)}, cfg.storeOptions...)
	store := taskservice.NewStore(repo, storeOpts...)

	a := &App{
		repo:      repo,
		TaskStore: store,
		Editor:    taskservice.NewEditor(store),
		logger:    cfg.logger,
	}

	if err := store.Load(ctx); err != nil {
		cfg.logger.Warn("Starting with partially empty task lists", "error", err)
		a.LoadErr = err
	}

	return a
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database.
func (a *App) Close() error {
	return a.repo.Close()
}
