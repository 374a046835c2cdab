package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/tui/theme"
)

// Styles are rebuilt by InitStyles after theme.Init
var (
	PaneStyle         lipgloss.Style
	ActivePaneStyle   lipgloss.Style
	PaneTitleStyle    lipgloss.Style
	TaskStyle         lipgloss.Style
	SelectedTaskStyle lipgloss.Style
	CompletedStyle    lipgloss.Style
	OverdueStyle      lipgloss.Style
	MetaStyle         lipgloss.Style
	HighStyle         lipgloss.Style
	LowStyle          lipgloss.Style
	StatusBarStyle    lipgloss.Style
	FilterChipStyle   lipgloss.Style

	FormBoxStyle   lipgloss.Style
	EditBoxStyle   lipgloss.Style
	DeleteBoxStyle lipgloss.Style
	HelpBoxStyle   lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles builds every component style from the current theme colors
func InitStyles() {
	PaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PaneBorder)).
		Padding(0, 1)

	ActivePaneStyle = PaneStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))

	PaneTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal))

	SelectedTaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.SelectedBg)).
		Bold(true)

	CompletedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Completed)).
		Strikethrough(true)

	OverdueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Overdue)).
		Bold(true)

	MetaStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	HighStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.HighPriority)).
		Bold(true)

	LowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.LowPriority))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	FilterChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(1, 2)

	EditBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(theme.Edit))

	DeleteBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(theme.Delete))

	HelpBoxStyle = FormBoxStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))
}
