package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/cli"
	"github.com/thenoetrevino/tarea/internal/cli/styles"
	"github.com/thenoetrevino/tarea/internal/cli/task"
	"github.com/thenoetrevino/tarea/internal/cli/tutorial"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/database"
	"github.com/thenoetrevino/tarea/internal/launcher"
	"github.com/thenoetrevino/tarea/internal/logging"
	"github.com/thenoetrevino/tarea/internal/tui/components"
	"github.com/thenoetrevino/tarea/internal/tui/theme"
)

// runtime holds what PersistentPreRunE opened for the running command
type runtime struct {
	cfg       *config.Config
	app       *app.App
	logCloser io.Closer
}

// NewRootCmd builds the tarea command tree
func NewRootCmd() *cobra.Command {
	var (
		dbPath string
		rt     runtime
	)

	rootCmd := &cobra.Command{
		Use:   "tarea",
		Short: "tarea - a terminal task list",
		Long: `tarea keeps a pending and a completed list of short tasks with due
dates, categories, priorities and subtask notes.

Run without arguments to open the interactive UI, or use 'tarea task'
for scripting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.open(cmd, dbPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = rt.close() }()
			if err := launcher.Launch(cmd.Context(), rt.app, rt.cfg); err != nil {
				return &cli.ExitCodeError{Code: cli.ExitError, Err: err}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the task database (default ~/.tarea/tasks.db)")

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())

	return rootCmd
}

// open loads config, starts logging and opens the database for cmd
func (rt *runtime) open(cmd *cobra.Command, dbPath string) error {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of their tasks
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	rt.cfg = cfg

	closer, err := logging.Init(cfg.Logging.Dir, logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	} else {
		rt.logCloser = closer
	}

	styles.Init(cfg.ColorScheme)
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	if dbPath == "" {
		dbPath = cfg.Storage.Path
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize database: %v\n", err)
		return &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
	}

	rt.app = app.New(ctx, database.NewRepository(db))
	cmd.SetContext(cli.WithApp(ctx, rt.app))
	return nil
}

// close releases the database and the log file; safe to call twice
func (rt *runtime) close() error {
	var err error
	if rt.app != nil {
		err = rt.app.Close()
		rt.app = nil
	}
	if rt.logCloser != nil {
		_ = rt.logCloser.Close()
		rt.logCloser = nil
	}
	return err
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
