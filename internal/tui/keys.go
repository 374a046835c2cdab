package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tarea/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
// It implements help.KeyMap for the help overlay and the status bar hint.
type keyMap struct {
	AddTask    key.Binding
	EditTask   key.Binding
	DeleteTask key.Binding
	ToggleTask key.Binding
	SaveForm   key.Binding

	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	ClearFilters key.Binding

	SwitchList key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	ShowHelp key.Binding
	Quit     key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddTask:    key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		EditTask:   key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit task")),
		DeleteTask: key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		ToggleTask: key.NewBinding(key.WithKeys(km.ToggleTask), key.WithHelp(km.ToggleTask, "complete / reopen")),
		SaveForm:   key.NewBinding(key.WithKeys(km.SaveForm), key.WithHelp(km.SaveForm, "save form")),

		Search:       key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		NextCategory: key.NewBinding(key.WithKeys(km.NextCategory), key.WithHelp(km.NextCategory, "next category")),
		PrevCategory: key.NewBinding(key.WithKeys(km.PrevCategory), key.WithHelp(km.PrevCategory, "previous category")),
		ClearFilters: key.NewBinding(key.WithKeys(km.ClearFilters), key.WithHelp(km.ClearFilters, "clear filters")),

		SwitchList: key.NewBinding(key.WithKeys(km.SwitchList), key.WithHelp(km.SwitchList, "switch list")),
		PrevTask:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "previous task")),
		NextTask:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),

		ShowHelp: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp is shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.ToggleTask, k.Search, k.ShowHelp, k.Quit}
}

// FullHelp is shown in the help overlay, one column per group
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.EditTask, k.DeleteTask, k.ToggleTask, k.SaveForm},
		{k.Search, k.NextCategory, k.PrevCategory, k.ClearFilters},
		{k.SwitchList, k.PrevTask, k.NextTask, k.ShowHelp, k.Quit},
	}
}
