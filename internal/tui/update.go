package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)

	case notificationExpiredMsg:
		m.NotificationState.Dismiss(msg.id)
		return m, nil
	}

	// Forms need to receive ALL messages, not just key presses
	if m.UiState.Mode() == state.FormMode {
		return m.updateTaskForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.UiState.Mode() {
		case state.NormalMode:
			return m.handleNormalMode(keyMsg)
		case state.SearchMode:
			return m.handleSearchMode(keyMsg)
		case state.HelpMode:
			return m.handleHelpMode(keyMsg)
		case state.DeleteConfirmMode:
			return m.handleDeleteConfirm(keyMsg)
		}
	}

	// Cursor blinks and other input messages
	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.FilterState.Input, cmd = m.FilterState.Input.Update(msg)
		return m, cmd
	}

	return m, nil
}
