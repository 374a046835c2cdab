package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a task permanently",
		Long: `Delete the task at <position> from the pending (default) or completed list.
There is no undo.

Examples:
  tarea task delete 3
  tarea task delete 1 --list completed
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cli.AddViewFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	position, err := cli.ParsePosition(args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}
	target, err := cli.ResolvePosition(store, view, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	removed, list, err := store.RemoveByID(ctx, target.ID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	out := newTaskOutput(store, removed, list, position)

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}
	printNotice(taskservice.RemoveAction(list), out)
	return nil
}
