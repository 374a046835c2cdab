package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the tarea workflow guide",
		Long: `Print a short guide to the interactive UI, the task commands,
positions and exit codes.

Use --raw for the plain markdown, e.g. to paste into notes or scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(render(tutorialContent, raw))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without styling")
	return cmd
}

// render styles markdown for the terminal, falling back to the source
func render(markdown string, raw bool) string {
	if raw {
		return markdown
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
