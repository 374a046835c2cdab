package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/models"
)

// PaneProps describes a list pane
type PaneProps struct {
	Title     string
	Tasks     []models.Task
	Selected  int
	Active    bool
	Completed bool
	IsOverdue func(dueDate string) bool
	Width     int
	Height    int
}

// RenderPane renders a bordered pane of task rows. Rows scroll so the
// selected task stays visible.
func RenderPane(props PaneProps) string {
	innerWidth := max(props.Width-PaneChrome, MinPaneWidth-PaneChrome)
	innerHeight := max(props.Height-2, 3)

	title := PaneTitleStyle.Render(fmt.Sprintf("%s (%d)", props.Title, len(props.Tasks)))

	var rows []string
	for i, t := range props.Tasks {
		overdue := !props.Completed && props.IsOverdue != nil && props.IsOverdue(t.DueDate)
		rows = append(rows, RenderTask(TaskProps{
			Task:      t,
			Selected:  props.Active && i == props.Selected,
			Completed: props.Completed,
			Overdue:   overdue,
			Width:     innerWidth,
		}))
	}

	body := MetaStyle.Italic(true).Render("No tasks")
	if len(rows) > 0 {
		body = visibleRows(rows, props.Selected, innerHeight-2)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body)

	style := PaneStyle
	if props.Active {
		style = ActivePaneStyle
	}
	return style.
		Width(innerWidth + PaneChrome).
		Height(innerHeight + 2).
		Render(content)
}

// visibleRows drops rows from the top until the selected row fits in height lines
func visibleRows(rows []string, selected, height int) string {
	start := 0
	for start < selected && linesIn(rows[start:selected+1]) > height {
		start++
	}

	var out []string
	used := 0
	for _, r := range rows[start:] {
		h := lipgloss.Height(r)
		if used+h > height && len(out) > 0 {
			break
		}
		out = append(out, r)
		used += h
	}
	return strings.Join(out, "\n")
}

func linesIn(rows []string) int {
	n := 0
	for _, r := range rows {
		n += lipgloss.Height(r)
	}
	return n
}
