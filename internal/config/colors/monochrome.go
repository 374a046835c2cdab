package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#121212",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		PaneBorder:     "#FFFFFF",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",

		Overdue:      "#FFFFFF",
		Completed:    "#585858",
		HighPriority: "#FFFFFF",
		LowPriority:  "#8A8A8A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		SuccessFg: "#FFFFFF",
		SuccessBg: "#303030",
		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#4E4E4E",
		ErrorFg:   "#000000",
		ErrorBg:   "#D0D0D0",
	}
}
