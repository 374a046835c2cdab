package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/tui/core"
)

// Launch runs the TUI until the user quits or the process is signalled
func Launch(parent context.Context, a *app.App, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		parent,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	tuiApp := core.New(ctx, a, cfg)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Every change is saved as it happens; only the program needs to stop
		<-errChan
	}

	return nil
}
