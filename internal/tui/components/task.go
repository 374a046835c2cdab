package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/models"
)

// TaskProps describes one row of a task pane
type TaskProps struct {
	Task      models.Task
	Selected  bool
	Completed bool
	Overdue   bool
	Width     int
}

// RenderTask renders a task row: marker, checkbox, text, then a dim line of
// due date, category and priority. The selected row also shows its subtask note.
func RenderTask(props TaskProps) string {
	marker := "  "
	if props.Selected {
		marker = "▸ "
	}
	check := "[ ] "
	if props.Completed {
		check = "[x] "
	}

	textWidth := max(props.Width-TaskIndicatorWidth, 1)
	text := truncate(props.Task.Text, textWidth)

	textStyle := TaskStyle
	switch {
	case props.Completed:
		textStyle = CompletedStyle
	case props.Overdue:
		textStyle = OverdueStyle
	}
	if props.Selected {
		textStyle = textStyle.Background(SelectedTaskStyle.GetBackground()).Bold(true)
	}

	lines := []string{marker + check + textStyle.Render(text)}
	lines = append(lines, strings.Repeat(" ", TaskIndicatorWidth)+renderMeta(props))

	if props.Selected && props.Task.HasSubtask() {
		note := RenderSubtask(SubtaskProps{Subtask: props.Task.Subtask, Width: textWidth})
		lines = append(lines, indent(note, SubtaskIndent))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMeta(props TaskProps) string {
	var parts []string

	if props.Task.DueDate != "" {
		due := "due " + props.Task.DueDate
		if props.Overdue {
			parts = append(parts, OverdueStyle.Render(due+" overdue"))
		} else {
			parts = append(parts, MetaStyle.Render(due))
		}
	}
	parts = append(parts, MetaStyle.Render(string(props.Task.Category)))
	parts = append(parts, priorityStyle(props.Task.Priority).Render(string(props.Task.Priority)))

	return strings.Join(parts, MetaStyle.Render(" · "))
}

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return HighStyle
	case models.PriorityLow:
		return LowStyle
	default:
		return MetaStyle
	}
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
