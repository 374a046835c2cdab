package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a pending task",
		Long: `Add a task to the pending list.

Examples:
  # Just the text
  tarea task add --text "Buy milk"

  # Everything
  tarea task add --text "Quarterly report" --due 2025-03-31 \
    --category work --priority high --subtask "collect numbers first"

  # Quiet mode prints the new task's position for bash capture
  POS=$(tarea task add --text "Call mom" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	addDraftFlags(cmd)
	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(err)
	}
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	store := cliInstance.App.TaskStore

	draft := models.NewDraft()
	applyDraftFlags(cmd, &draft)

	created, err := store.Create(ctx, draft)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	out := newTaskOutput(store, created, models.ListPending,
		cli.PositionOf(store, models.ListPending, created.ID))

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}
	printNotice(taskservice.ActionAdd, out)
	return nil
}

// applyDraftFlags copies every task field flag the user set onto draft
func applyDraftFlags(cmd *cobra.Command, draft *models.Draft) {
	fields := map[string]*string{
		"text":     &draft.Text,
		"due":      &draft.DueDate,
		"category": &draft.Category,
		"priority": &draft.Priority,
		"subtask":  &draft.Subtask,
	}
	for name, dst := range fields {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
}
