package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <position>",
		Short: "Edit a pending task",
		Long: `Replace fields of a pending task. Fields whose flag is not given keep
their current value; pass --due "" to clear the due date.

Examples:
  tarea task update 2 --priority high
  tarea task update 1 --search milk --text "Buy oat milk"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	addDraftFlags(cmd)
	cmd.Flags().String("search", "", "Resolve the position within tasks matching this text")
	cmd.Flags().String("in-category", "all", "Resolve the position within this category")
	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	store := cliInstance.App.TaskStore

	// --category names the new value here, so the filter has its own flag
	search, _ := cmd.Flags().GetString("search")
	inCategory, _ := cmd.Flags().GetString("in-category")
	filter, err := models.ParseCategoryFilter(inCategory)
	if err != nil {
		return cli.Fail(formatter, err)
	}
	view := cli.ViewFlags{List: models.ListPending, Search: search, Category: filter}

	current, err := cli.ResolvePosition(store, view, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}

	draft := models.DraftFromTask(current)
	applyDraftFlags(cmd, &draft)

	updated, err := store.UpdateByID(ctx, current.ID, draft)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	out := newTaskOutput(store, updated, models.ListPending,
		cli.PositionOf(store, models.ListPending, updated.ID))

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(out)
	}
	printNotice(taskservice.ActionUpdate, out)
	return nil
}
