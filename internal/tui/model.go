package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

// notificationTTL is how long a notification stays on screen
const notificationTTL = 3 * time.Second

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	FormState         *state.FormState
	FilterState       *state.FilterState
	NotificationState *state.NotificationState

	keys keyMap
	help help.Model
}

// notificationExpiredMsg dismisses the notification with the given ID
type notificationExpiredMsg struct {
	id int
}

// InitialModel creates the TUI model on top of an initialized App
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	return Model{
		ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		FilterState:       state.NewFilterState(),
		NotificationState: state.NewNotificationState(),
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
	}
}

// Init reports tasks that could not be restored from storage
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	if m.App.LoadErr != nil {
		return m.notify(state.LevelWarning, "Some saved tasks could not be loaded")
	}
	return nil
}

// notify shows a notification and schedules its dismissal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// notifyNotice shows the feedback the task service produced for an action
func (m Model) notifyNotice(n taskservice.Notice) tea.Cmd {
	if n.Message == "" {
		return nil
	}
	return m.notify(levelOf(n.Level), n.Message)
}

func levelOf(l taskservice.Level) state.NotificationLevel {
	switch l {
	case taskservice.LevelSuccess:
		return state.LevelSuccess
	case taskservice.LevelInfo:
		return state.LevelInfo
	case taskservice.LevelWarning:
		return state.LevelWarning
	default:
		return state.LevelError
	}
}

// currentView returns the filtered, sorted tasks shown in the given pane
func (m Model) currentView(list models.ListName) []models.Task {
	return m.App.TaskStore.View(list, m.FilterState.Query(), m.FilterState.Category())
}

// getCurrentTask returns the selected task of the active pane.
// Returns false if the pane is empty.
func (m Model) getCurrentTask() (models.Task, bool) {
	tasks := m.currentView(m.UiState.ActiveList())
	i := m.UiState.Selected()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

// clampSelections keeps both pane selections inside their views
func (m Model) clampSelections() {
	for _, list := range []models.ListName{models.ListPending, models.ListCompleted} {
		m.UiState.Clamp(list, len(m.currentView(list)))
	}
}
