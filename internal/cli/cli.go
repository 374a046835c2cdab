package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/tarea/internal/app"
)

// ErrNoApp is returned when a command runs without an application in its context
var ErrNoApp = errors.New("application not initialized")

type appKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context
}

// WithApp stores the application container in ctx for subcommands to pick up.
// The root command does this before any subcommand runs; tests do it directly.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI bound to the application stored in ctx
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey{}).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return &CLI{App: a, ctx: ctx}, nil
}

// Context returns the context the CLI was created from
func (c *CLI) Context() context.Context {
	return c.ctx
}
