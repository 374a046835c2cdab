package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key presses while browsing the lists
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.AddTask):
		return m.handleAddTask()

	case key.Matches(msg, m.keys.EditTask):
		return m.handleEditTask()

	case key.Matches(msg, m.keys.ToggleTask):
		return m.handleToggleTask()

	case key.Matches(msg, m.keys.DeleteTask):
		return m.handleDeleteTask()

	case key.Matches(msg, m.keys.Search):
		m.UiState.SetMode(state.SearchMode)
		return m, m.FilterState.Input.Focus()

	case key.Matches(msg, m.keys.NextCategory):
		m.FilterState.NextCategory()
		m.UiState.ResetSelection()
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.FilterState.PrevCategory()
		m.UiState.ResetSelection()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.FilterState.Reset()
		m.UiState.ResetSelection()
		return m, nil

	case key.Matches(msg, m.keys.SwitchList):
		m.UiState.SwitchList()
		m.clampSelections()
		return m, nil

	case key.Matches(msg, m.keys.PrevTask):
		m.UiState.MoveUp()
		return m, nil

	case key.Matches(msg, m.keys.NextTask):
		m.UiState.MoveDown(len(m.currentView(m.UiState.ActiveList())))
		return m, nil
	}

	return m, nil
}

// handleAddTask opens an empty task form
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if m.App.Editor.Editing() {
		m.App.Editor.Cancel()
	}
	return m.openTaskForm()
}

// handleEditTask opens the form on the selected pending task
func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		return m, nil
	}
	if m.UiState.ActiveList() != models.ListPending {
		return m, m.notify(state.LevelInfo, "Reopen a task to edit it")
	}

	if err := m.App.Editor.BeginEdit(task.ID); err != nil {
		slog.Error("Error starting edit", "id", task.ID, "error", err)
		return m, m.notifyNotice(taskservice.NoticeFor(taskservice.ActionUpdate, err))
	}
	return m.openTaskForm()
}

// handleToggleTask moves the selected task to the other list
func (m Model) handleToggleTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		return m, nil
	}

	_, dest, err := m.App.TaskStore.Toggle(m.ctx, task.ID)
	if err != nil {
		slog.Error("Error toggling task", "id", task.ID, "error", err)
	}

	action := taskservice.ActionReopen
	if dest == models.ListCompleted || (dest == "" && m.UiState.ActiveList() == models.ListPending) {
		action = taskservice.ActionComplete
	}
	if dest == models.ListCompleted {
		m.App.Editor.Release(task.ID)
	}

	m.clampSelections()
	return m, m.notifyNotice(taskservice.NoticeFor(action, err))
}

// handleDeleteTask asks for confirmation before deleting the selected task
func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task, ok := m.getCurrentTask()
	if !ok {
		return m, nil
	}
	m.UiState.SetDeleteTarget(task.ID)
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// ============================================================================
// DELETE CONFIRMATION
// ============================================================================

// handleDeleteConfirm deletes the pending target on y/enter and cancels on n/esc
func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.UiState.DeleteTarget()
		m.UiState.SetDeleteTarget("")
		m.UiState.SetMode(state.NormalMode)

		_, list, err := m.App.TaskStore.RemoveByID(m.ctx, id)
		if err != nil {
			slog.Error("Error deleting task", "id", id, "error", err)
		}
		if list == "" {
			list = m.UiState.ActiveList()
		}
		m.App.Editor.Release(id)

		m.clampSelections()
		return m, m.notifyNotice(taskservice.NoticeFor(taskservice.RemoveAction(list), err))

	case "n", "N", "esc":
		m.UiState.SetDeleteTarget("")
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}
