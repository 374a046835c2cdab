package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the bottom status line
type StatusBarProps struct {
	Pending   int
	Completed int
	Overdue   int
	Category  string
	Search    string
	Hint      string
	Width     int
}

// RenderStatusBar renders counts and active filters on the left and a key hint on the right
func RenderStatusBar(props StatusBarProps) string {
	left := fmt.Sprintf("%d pending · %d completed", props.Pending, props.Completed)
	if props.Overdue > 0 {
		left += " · " + OverdueStyle.Render(fmt.Sprintf("%d overdue", props.Overdue))
	}
	left = StatusBarStyle.Render(left)

	left += " " + FilterChipStyle.Render("category: "+props.Category)
	if props.Search != "" {
		left += " " + FilterChipStyle.Render("search: "+props.Search)
	}

	right := StatusBarStyle.Render(props.Hint)

	gap := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}
