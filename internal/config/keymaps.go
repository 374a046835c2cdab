package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	ToggleTask string `yaml:"toggle_task"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Filters
	Search       string `yaml:"search"`
	NextCategory string `yaml:"next_category"`
	PrevCategory string `yaml:"prev_category"`
	ClearFilters string `yaml:"clear_filters"`

	// Navigation
	SwitchList string `yaml:"switch_list"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		ToggleTask: "space",
		SaveForm:   "ctrl+s",

		Search:       "/",
		NextCategory: "c",
		PrevCategory: "C",
		ClearFilters: "r",

		SwitchList: "tab",
		PrevTask:   "k",
		NextTask:   "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddTask, defaults.AddTask)
	fill(&k.EditTask, defaults.EditTask)
	fill(&k.DeleteTask, defaults.DeleteTask)
	fill(&k.ToggleTask, defaults.ToggleTask)
	fill(&k.SaveForm, defaults.SaveForm)
	fill(&k.Search, defaults.Search)
	fill(&k.NextCategory, defaults.NextCategory)
	fill(&k.PrevCategory, defaults.PrevCategory)
	fill(&k.ClearFilters, defaults.ClearFilters)
	fill(&k.SwitchList, defaults.SwitchList)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
