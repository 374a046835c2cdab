package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <position>",
		Short: "Move a pending task to the completed list",
		Long: `Mark the pending task at <position> as completed.

Examples:
  # Complete the first pending task
  tarea task done 1

  # Position within a filtered listing
  tarea task done 1 --category work

  # JSON output for agents
  tarea task done 1 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDone,
	}

	cli.AddFilterFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	return moveTask(cmd, args[0], models.ListPending, taskservice.ActionComplete)
}

// ReopenCmd returns the task reopen subcommand
func ReopenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <position>",
		Short: "Move a completed task back to the pending list",
		Long: `Move the completed task at <position> back to the end of the pending list.
Positions refer to 'tarea task list --list completed'.

Examples:
  tarea task reopen 2
`,
		Args: cobra.ExactArgs(1),
		RunE: runReopen,
	}

	cli.AddFilterFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

func runReopen(cmd *cobra.Command, args []string) error {
	return moveTask(cmd, args[0], models.ListCompleted, taskservice.ActionReopen)
}

// moveTask resolves a position in the from list and toggles that task
func moveTask(cmd *cobra.Command, position string, from models.ListName, action taskservice.Action) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	store := cliInstance.App.TaskStore

	view, err := cli.GetViewFlags(cmd)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	view.List = from

	target, err := cli.ResolvePosition(store, view, position)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	var moved models.Task
	if from == models.ListPending {
		moved, err = store.CompleteByID(ctx, target.ID)
	} else {
		moved, err = store.ReopenByID(ctx, target.ID)
	}
	if err != nil {
		return cli.Fail(formatter, err)
	}

	to := from.Other()
	out := newTaskOutput(store, moved, to, cli.PositionOf(store, to, moved.ID))

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}
	printNotice(action, out)
	return nil
}
