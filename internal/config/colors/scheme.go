package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // add form
	Edit   string `yaml:"edit"`   // update form
	Delete string `yaml:"delete"` // delete confirmation

	// Panes and rows
	PaneBorder     string `yaml:"pane_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Task state
	Overdue      string `yaml:"overdue"`
	Completed    string `yaml:"completed"`
	HighPriority string `yaml:"high_priority"`
	LowPriority  string `yaml:"low_priority"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// fields lists every color slot so merges and defaults stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.Create, &c.Edit, &c.Delete,
		&c.PaneBorder, &c.SelectedBorder, &c.SelectedBg,
		&c.Overdue, &c.Completed, &c.HighPriority, &c.LowPriority,
		&c.Title, &c.Subtle, &c.Normal,
		&c.SuccessFg, &c.SuccessBg, &c.InfoFg, &c.InfoBg,
		&c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}
