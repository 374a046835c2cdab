package state

import (
	"charm.land/bubbles/v2/textinput"
	"github.com/thenoetrevino/tarea/internal/models"
)

// maxQueryLength bounds the search box
const maxQueryLength = 100

// FilterState manages the search box and the category filter that
// together decide which tasks each pane shows.
type FilterState struct {
	// Input is the search box; its value is applied as the user types
	Input textinput.Model

	// category is 0 for "all", otherwise 1 + index into models.Categories()
	category int
}

// NewFilterState creates a FilterState that matches every task.
func NewFilterState() *FilterState {
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.Prompt = "/ "
	ti.CharLimit = maxQueryLength

	return &FilterState{Input: ti}
}

// Query returns the current search text
func (s *FilterState) Query() string {
	return s.Input.Value()
}

// Category returns the category filter in the form the task store expects
func (s *FilterState) Category() string {
	if s.category == 0 {
		return models.CategoryFilterAll
	}
	return string(models.Categories()[s.category-1])
}

// CategoryLabel returns the filter as shown in the status bar
func (s *FilterState) CategoryLabel() string {
	if s.category == 0 {
		return "All"
	}
	return s.Category()
}

// NextCategory cycles all -> General -> ... -> Urgent -> all
func (s *FilterState) NextCategory() {
	s.category = (s.category + 1) % (len(models.Categories()) + 1)
}

// PrevCategory cycles in the opposite direction
func (s *FilterState) PrevCategory() {
	n := len(models.Categories()) + 1
	s.category = (s.category + n - 1) % n
}

// IsActive reports whether any filter narrows the views
func (s *FilterState) IsActive() bool {
	return s.Query() != "" || s.category != 0
}

// ClearQuery empties the search box
func (s *FilterState) ClearQuery() {
	s.Input.SetValue("")
}

// Reset clears the search and the category filter
func (s *FilterState) Reset() {
	s.ClearQuery()
	s.category = 0
}
