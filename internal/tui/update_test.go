package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarea/internal/models"
	"github.com/thenoetrevino/tarea/internal/testutil"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

func TestWindowSize_RecordsDimensions(t *testing.T) {
	m, _ := setupTestModel(t)

	assert.Equal(t, 120, m.UiState.Width())
	assert.Equal(t, 40, m.UiState.Height())
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t)

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNavigation_MovesWithinActivePane(t *testing.T) {
	m, a := setupTestModel(t)
	testutil.CreateTestTask(t, a, "first", "")
	testutil.CreateTestTask(t, a, "second", "")

	m, _ = press(t, m, runeKey('j'))
	assert.Equal(t, 1, m.UiState.Selected())

	// Cannot move past the last row
	m, _ = press(t, m, keyDown)
	assert.Equal(t, 1, m.UiState.Selected())

	m, _ = press(t, m, runeKey('k'))
	assert.Equal(t, 0, m.UiState.Selected())
}

func TestSwitchList(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, keyTab)
	assert.Equal(t, models.ListCompleted, m.UiState.ActiveList())

	m, _ = press(t, m, keyTab)
	assert.Equal(t, models.ListPending, m.UiState.ActiveList())
}

func TestToggleTask_CompletesAndReopens(t *testing.T) {
	m, a := setupTestModel(t)
	task := testutil.CreateTestTask(t, a, "ship it", "")

	m, cmd := press(t, m, keySpace)
	assert.NotNil(t, cmd, "toggle should schedule the notification expiry")

	_, list, ok := a.TaskStore.Find(task.ID)
	require.True(t, ok)
	assert.Equal(t, models.ListCompleted, list)
	require.Len(t, m.NotificationState.All(), 1)
	assert.Equal(t, "Task marked as completed!", m.NotificationState.All()[0].Message)

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keySpace)

	_, list, _ = a.TaskStore.Find(task.ID)
	assert.Equal(t, models.ListPending, list)
	assert.Equal(t, "Task moved to pending!", m.NotificationState.All()[1].Message)
}

func TestToggleTask_EmptyPaneIsNoop(t *testing.T) {
	m, _ := setupTestModel(t)

	m, cmd := press(t, m, keySpace)
	assert.Nil(t, cmd)
	assert.False(t, m.NotificationState.HasAny())
}

func TestDeleteConfirm_Yes(t *testing.T) {
	m, a := setupTestModel(t)
	testutil.CreateTestTask(t, a, "delete me", "")

	m, _ = press(t, m, runeKey('d'))
	require.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "delete me")

	m, _ = press(t, m, runeKey('y'))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, a.TaskStore.Pending())
	assert.Equal(t, "Task deleted from pending.", m.NotificationState.All()[0].Message)
}

func TestDeleteConfirm_No(t *testing.T) {
	m, a := setupTestModel(t)
	testutil.CreateTestTask(t, a, "keep me", "")

	m, _ = press(t, m, runeKey('d'))
	m, _ = press(t, m, runeKey('n'))

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, a.TaskStore.Pending(), 1)
	assert.Empty(t, m.UiState.DeleteTarget())
}

func TestDeleteConfirm_CompletedTask(t *testing.T) {
	m, a := setupTestModel(t)
	task := testutil.CreateTestTask(t, a, "old", "")
	testutil.CompleteTestTask(t, a, task.ID)

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, runeKey('d'))
	m, _ = press(t, m, keyEnter)

	assert.Empty(t, a.TaskStore.Completed())
	assert.Equal(t, "Task deleted from completed.", m.NotificationState.All()[0].Message)
}

func TestSearchMode_FiltersAsYouType(t *testing.T) {
	m, a := setupTestModel(t)
	testutil.CreateTestTask(t, a, "Buy milk", "")
	testutil.CreateTestTask(t, a, "Write report", "")

	m, _ = press(t, m, runeKey('/'))
	require.Equal(t, state.SearchMode, m.UiState.Mode())

	m = typeText(t, m, "MILK")
	view := m.currentView(models.ListPending)
	require.Len(t, view, 1)
	assert.Equal(t, "Buy milk", view[0].Text)

	// Enter keeps the filter
	m, _ = press(t, m, keyEnter)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.currentView(models.ListPending), 1)

	// Esc in search mode clears it
	m, _ = press(t, m, runeKey('/'))
	m, _ = press(t, m, keyEsc)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Len(t, m.currentView(models.ListPending), 2)
}

func TestSearchMode_SearchKeyIsTypedText(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, runeKey('/'))
	m = typeText(t, m, "qa")

	assert.Equal(t, state.SearchMode, m.UiState.Mode(), "q must not quit while typing")
	assert.Equal(t, "qa", m.FilterState.Query())
}

func TestCategoryFilter_CyclesAndClears(t *testing.T) {
	m, a := setupTestModel(t)
	testutil.CreateTestDraft(t, a, models.Draft{Text: "report", Category: "Work"})
	testutil.CreateTestDraft(t, a, models.Draft{Text: "gym", Category: "Personal"})

	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, "General", m.FilterState.Category())
	assert.Empty(t, m.currentView(models.ListPending))

	m, _ = press(t, m, runeKey('c'))
	assert.Equal(t, "Work", m.FilterState.Category())
	require.Len(t, m.currentView(models.ListPending), 1)

	m, _ = press(t, m, tea.KeyPressMsg(tea.Key{Text: "C", Code: 'c', Mod: tea.ModShift}))
	assert.Equal(t, "General", m.FilterState.Category())

	m, _ = press(t, m, runeKey('r'))
	assert.Equal(t, "all", m.FilterState.Category())
	assert.Len(t, m.currentView(models.ListPending), 2)
}

func TestHelpMode_OpensAndCloses(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(t, m, runeKey('?'))
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard Shortcuts")

	m, _ = press(t, m, keyEsc)
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestNotificationExpired_Dismisses(t *testing.T) {
	m, _ := setupTestModel(t)
	id := m.NotificationState.Add(state.LevelInfo, "hello")

	updated, _ := m.Update(notificationExpiredMsg{id: id})
	m = updated.(Model)

	assert.False(t, m.NotificationState.HasAny())
}

func TestInit_ReportsLoadError(t *testing.T) {
	m, a := setupTestModel(t)

	assert.Nil(t, m.Init())

	a.LoadErr = assert.AnError
	assert.NotNil(t, m.Init())
	assert.True(t, m.NotificationState.HasAny())
}
