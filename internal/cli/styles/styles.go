package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/models"
)

// Styles stay zero-valued (plain text) until Init is called
var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Due:", "Priority:"
	ValueStyle    lipgloss.Style // For field values

	// Task state styles
	OverdueStyle   lipgloss.Style
	CompletedStyle lipgloss.Style
	HighStyle      lipgloss.Style
	LowStyle       lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	InfoStyle    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	OverdueStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Overdue))

	CompletedStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Completed))

	HighStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.HighPriority))

	LowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.LowPriority))

	SuccessStyle = badge(colors.SuccessFg, colors.SuccessBg)
	InfoStyle = badge(colors.InfoFg, colors.InfoBg)
	ErrorStyle = badge(colors.ErrorFg, colors.ErrorBg)
	WarningStyle = badge(colors.WarningFg, colors.WarningBg)
}

func badge(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

// PriorityStyle returns the style for a priority value
func PriorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return HighStyle
	case models.PriorityLow:
		return LowStyle
	default:
		return ValueStyle
	}
}
