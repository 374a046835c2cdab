package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent:     "#874BFD",
		Background: "#1C1C1C",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// Panes
		PaneBorder:     "#5F87D7",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		// Task state
		Overdue:      "#FF5F5F",
		Completed:    "#6C6C6C",
		HighPriority: "#FFAF00",
		LowPriority:  "#5FAFAF",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		SuccessFg: "#5FD75F",
		SuccessBg: "#005F00",
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}
