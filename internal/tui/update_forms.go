package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
	"github.com/thenoetrevino/tarea/internal/tui/huhforms"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

// openTaskForm shows the task form filled from the editor draft
func (m Model) openTaskForm() (tea.Model, tea.Cmd) {
	m.FormState.Load(m.App.Editor.Draft())
	form := m.newTaskForm()
	m.FormState.SetForm(form)
	m.UiState.SetMode(state.FormMode)
	return m, form.Init()
}

func (m Model) newTaskForm() *huh.Form {
	return huhforms.CreateTaskForm(m.FormState.Draft(), m.App.Editor.SubmitLabel()).
		WithTheme(huhforms.CreateTareaTheme(m.Config.ColorScheme))
}

// updateTaskForm handles all messages when in FormMode
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.FormState.Form()
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.App.Editor.Cancel()
			m.FormState.Clear()
			m.UiState.SetMode(state.NormalMode)
			return m, tea.ClearScreen

		case m.Config.KeyMappings.SaveForm:
			// Quick save via C-s
			form.State = huh.StateCompleted
			return m.submitTaskForm()
		}
	}

	model, cmd := form.Update(msg)
	form = model.(*huh.Form)
	m.FormState.SetForm(form)

	if form.State == huh.StateCompleted {
		return m.submitTaskForm()
	}

	return m, cmd
}

// submitTaskForm hands the draft to the editor. A rejected draft reopens
// the form with the user's input intact.
func (m Model) submitTaskForm() (tea.Model, tea.Cmd) {
	m.App.Editor.SetDraft(*m.FormState.Draft())

	_, notice, err := m.App.Editor.Submit(m.ctx)
	if errors.Is(err, taskservice.ErrValidation) {
		m.FormState.Load(m.App.Editor.Draft())
		form := m.newTaskForm()
		m.FormState.SetForm(form)
		return m, tea.Batch(form.Init(), m.notifyNotice(notice))
	}
	if err != nil {
		slog.Error("Error saving task", "error", err)
	}

	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.clampSelections()
	return m, tea.Batch(tea.ClearScreen, m.notifyNotice(notice))
}
