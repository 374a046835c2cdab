package colors

// Wave returns a muted blue scheme
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent:     "#957FB8",
		Background: "#1F1F28",

		Create: "#98BB6C",
		Edit:   "#7E9CD8",
		Delete: "#E82424",

		PaneBorder:     "#54546D",
		SelectedBorder: "#7E9CD8",
		SelectedBg:     "#2D4F67",

		Overdue:      "#FF5D62",
		Completed:    "#727169",
		HighPriority: "#FF9E3B",
		LowPriority:  "#6A9589",

		Title:  "#7E9CD8",
		Subtle: "#727169",
		Normal: "#DCD7BA",

		SuccessFg: "#98BB6C",
		SuccessBg: "#2B3328",
		InfoFg:    "#7FB4CA",
		InfoBg:    "#223249",
		WarningFg: "#E6C384",
		WarningBg: "#49443C",
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B",
	}
}
