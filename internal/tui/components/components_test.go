package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tarea/internal/models"
)

func sampleTask(text string) models.Task {
	return models.Task{
		ID:       text,
		Text:     text,
		Category: models.CategoryWork,
		Priority: models.PriorityHigh,
	}
}

func TestRenderTask_ShowsMetadata(t *testing.T) {
	task := sampleTask("write report")
	task.DueDate = "2024-06-01"

	out := RenderTask(TaskProps{Task: task, Overdue: true, Width: 60})

	assert.Contains(t, out, "[ ] ")
	assert.Contains(t, out, "write report")
	assert.Contains(t, out, "due 2024-06-01 overdue")
	assert.Contains(t, out, "Work")
	assert.Contains(t, out, "High")
}

func TestRenderTask_CompletedCheckbox(t *testing.T) {
	out := RenderTask(TaskProps{Task: sampleTask("done"), Completed: true, Width: 40})

	assert.Contains(t, out, "[x] ")
	assert.NotContains(t, out, "overdue")
}

func TestRenderTask_SubtaskOnlyWhenSelected(t *testing.T) {
	task := sampleTask("parent")
	task.Subtask = "call back"

	unselected := RenderTask(TaskProps{Task: task, Width: 60})
	selected := RenderTask(TaskProps{Task: task, Selected: true, Width: 60})

	assert.NotContains(t, unselected, "call back")
	assert.Contains(t, selected, "call")
	assert.Contains(t, selected, "▸ ")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	got := truncate("a much longer task description", 10)
	assert.LessOrEqual(t, lipgloss.Width(got), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestRenderSubtask_EmptyFallback(t *testing.T) {
	assert.Contains(t, RenderSubtask(SubtaskProps{Width: 30}), "No subtask")
}

func TestGetRenderer_CachesByWidth(t *testing.T) {
	first, err := getRenderer(33)
	assert.NoError(t, err)

	second, err := getRenderer(33)
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRenderPane_EmptyAndTitle(t *testing.T) {
	out := RenderPane(PaneProps{Title: "Pending", Width: 40, Height: 10})

	assert.Contains(t, out, "Pending (0)")
	assert.Contains(t, out, "No tasks")
}

func TestRenderPane_OverdueOnlyForPending(t *testing.T) {
	task := sampleTask("late")
	task.DueDate = "2000-01-01"
	always := func(string) bool { return true }

	pending := RenderPane(PaneProps{Title: "Pending", Tasks: []models.Task{task}, IsOverdue: always, Width: 60, Height: 10})
	completed := RenderPane(PaneProps{Title: "Completed", Tasks: []models.Task{task}, Completed: true, IsOverdue: always, Width: 60, Height: 10})

	assert.Contains(t, pending, "overdue")
	assert.NotContains(t, completed, "overdue")
}

func TestVisibleRows_KeepsSelectionOnScreen(t *testing.T) {
	rows := []string{"a", "b", "c", "d", "e"}

	out := visibleRows(rows, 4, 2)

	assert.Equal(t, "d\ne", out)
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{
		Pending:   2,
		Completed: 1,
		Overdue:   1,
		Category:  "Work",
		Search:    "milk",
		Hint:      "? help",
		Width:     120,
	})

	assert.Contains(t, out, "2 pending")
	assert.Contains(t, out, "1 completed")
	assert.Contains(t, out, "1 overdue")
	assert.Contains(t, out, "category: Work")
	assert.Contains(t, out, "search: milk")
	assert.Contains(t, out, "? help")
}
