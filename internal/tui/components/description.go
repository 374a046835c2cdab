package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tarea/internal/tui/theme"
)

// SubtaskProps describes a subtask note to render
type SubtaskProps struct {
	Subtask string
	Width   int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderSubtask renders a subtask note as markdown, falling back to the
// raw text if glamour fails
func RenderSubtask(props SubtaskProps) string {
	if props.Subtask == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No subtask")
	}

	renderer, err := getRenderer(max(props.Width, 10))
	if err == nil {
		rendered, err := renderer.Render("↳ " + props.Subtask)
		if err == nil {
			return strings.Trim(rendered, "\n ")
		}
	}
	return "↳ " + props.Subtask
}
