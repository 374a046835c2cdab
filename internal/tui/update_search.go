package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleSearchMode filters the panes as the user types.
// Enter keeps the query, esc clears it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.FilterState.Input.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil

	case "esc":
		m.FilterState.ClearQuery()
		m.FilterState.Input.Blur()
		m.UiState.ResetSelection()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	before := m.FilterState.Query()

	var cmd tea.Cmd
	m.FilterState.Input, cmd = m.FilterState.Input.Update(msg)

	if m.FilterState.Query() != before {
		m.UiState.ResetSelection()
	}
	return m, cmd
}
