package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
	"github.com/thenoetrevino/tarea/internal/cli/styles"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List the pending (default) or completed tasks, sorted by due date.
Tasks without a due date come last.

Examples:
  tarea task list
  tarea task list --list completed
  tarea task list --search milk --category personal
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cli.AddViewFlags(cmd)
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	tasks := store.View(view.List, view.Search, view.Category)
	outputs := make([]TaskOutput, 0, len(tasks))
	for i, t := range tasks {
		outputs = append(outputs, newTaskOutput(store, t, view.List, i+1))
	}

	// Output in appropriate format
	if formatter.Quiet {
		for _, o := range outputs {
			fmt.Println(o.GetID())
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"list":   view.List,
			"counts": store.Counts(),
			"tasks":  outputs,
		})
	}

	// Human-readable output
	if len(outputs) == 0 {
		fmt.Printf("No %s tasks found\n", view.List)
		return nil
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%d %s tasks:", len(outputs), view.List)))
	fmt.Println()
	for _, o := range outputs {
		fmt.Println(o.String())
	}
	return nil
}
