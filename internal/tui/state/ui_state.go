package state

import "github.com/thenoetrevino/tarea/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	FormMode                      // Adding or editing a task with huh
	SearchMode                    // Typing into the search box (/)
	HelpMode                      // Displaying help screen
	DeleteConfirmMode             // Confirming task deletion
)

func (m Mode) String() string {
	switch m {
	case FormMode:
		return "form"
	case SearchMode:
		return "search"
	case HelpMode:
		return "help"
	case DeleteConfirmMode:
		return "delete"
	default:
		return "normal"
	}
}

// UIState manages the user interface state.
// This includes which list pane is active, the selected row in each pane,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// activeList is the pane that receives navigation and actions
	activeList models.ListName

	// selected holds the selected row of each pane's current view
	selected map[models.ListName]int

	// deleteTarget is the ID of the task awaiting delete confirmation
	deleteTarget string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:       NormalMode,
		activeList: models.ListPending,
		selected: map[models.ListName]int{
			models.ListPending:   0,
			models.ListCompleted: 0,
		},
	}
}

// Width returns the terminal width
func (s *UIState) Width() int { return s.width }

// Height returns the terminal height
func (s *UIState) Height() int { return s.height }

// SetSize records new terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// ActiveList returns the pane that receives actions
func (s *UIState) ActiveList() models.ListName { return s.activeList }

// SetActiveList focuses the given pane
func (s *UIState) SetActiveList(list models.ListName) { s.activeList = list }

// SwitchList focuses the other pane
func (s *UIState) SwitchList() { s.activeList = s.activeList.Other() }

// Selected returns the selected row of the active pane
func (s *UIState) Selected() int { return s.selected[s.activeList] }

// SelectedIn returns the selected row of the given pane
func (s *UIState) SelectedIn(list models.ListName) int { return s.selected[list] }

// SetSelected sets the selected row of the active pane
func (s *UIState) SetSelected(i int) { s.selected[s.activeList] = max(i, 0) }

// MoveUp selects the previous row of the active pane
func (s *UIState) MoveUp() {
	if s.selected[s.activeList] > 0 {
		s.selected[s.activeList]--
	}
}

// MoveDown selects the next row of the active pane, which has count rows
func (s *UIState) MoveDown(count int) {
	if s.selected[s.activeList] < count-1 {
		s.selected[s.activeList]++
	}
}

// Clamp keeps the selection of list inside a view of count rows.
// Views shrink after deletes, toggles and filter changes.
func (s *UIState) Clamp(list models.ListName, count int) {
	i := s.selected[list]
	if i >= count {
		i = count - 1
	}
	s.selected[list] = max(i, 0)
}

// ResetSelection selects the first row of both panes
func (s *UIState) ResetSelection() {
	for list := range s.selected {
		s.selected[list] = 0
	}
}

// DeleteTarget returns the ID of the task awaiting delete confirmation
func (s *UIState) DeleteTarget() string { return s.deleteTarget }

// SetDeleteTarget records the task to delete once confirmed
func (s *UIState) SetDeleteTarget(id string) { s.deleteTarget = id }
