package theme

import "github.com/thenoetrevino/tarea/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	PaneBorder     string
	SelectedBorder string
	SelectedBg     string
	Overdue        string
	Completed      string
	HighPriority   string
	LowPriority    string
	SuccessFg      string
	SuccessBg      string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	PaneBorder = colors.PaneBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Overdue = colors.Overdue
	Completed = colors.Completed
	HighPriority = colors.HighPriority
	LowPriority = colors.LowPriority
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
