package app

import (
	"log/slog"

	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	storeOptions []taskservice.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStoreOptions passes options through to the task store (clock, ID generator)
func WithStoreOptions(opts ...taskservice.Option) Option {
	return func(cfg *appConfig) {
		cfg.storeOptions = append(cfg.storeOptions, opts...)
	}
}
