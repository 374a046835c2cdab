package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tarea/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long: `Add, list, edit, complete, reopen and delete tasks.

Commands that act on an existing task take its position as shown by
'tarea task list'. Pass the same --search and --category flags to address
a position in a filtered listing.`,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DoneCmd())
	cmd.AddCommand(ReopenCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags shared by every subcommand
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (position only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// addDraftFlags registers the task field flags used by add and update
func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "Task text")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("category", "", "Category: General, Work, Personal, Urgent")
	cmd.Flags().String("priority", "", "Priority: Low, Normal, High")
	cmd.Flags().String("subtask", "", "Subtask note")
}
