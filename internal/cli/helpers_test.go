package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
	"github.com/thenoetrevino/tarea/internal/testutil"
)

// ============================================================================
// Position Parsing Tests
// ============================================================================

func TestParsePosition(t *testing.T) {
	n, err := ParsePosition(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, bad := range []string{"0", "-1", "two", ""} {
		_, err := ParsePosition(bad)
		assert.ErrorIs(t, err, ErrInvalidPosition, "input %q", bad)
	}
}

// ============================================================================
// Position Resolution Tests
// ============================================================================

func TestResolvePosition_UsesFilteredSortedView(t *testing.T) {
	_, a := testutil.SetupTestApp(t)
	testutil.CreateTestTask(t, a, "buy milk", "")
	later := testutil.CreateTestTask(t, a, "write report", "2024-07-01")
	sooner := testutil.CreateTestTask(t, a, "write tests", "2024-06-20")

	view := ViewFlags{List: models.ListPending, Search: "write", Category: models.CategoryFilterAll}

	first, err := ResolvePosition(a.TaskStore, view, "1")
	require.NoError(t, err)
	assert.Equal(t, sooner.ID, first.ID)

	second, err := ResolvePosition(a.TaskStore, view, "2")
	require.NoError(t, err)
	assert.Equal(t, later.ID, second.ID)

	_, err = ResolvePosition(a.TaskStore, view, "3")
	assert.ErrorIs(t, err, taskservice.ErrIndexOutOfRange)
}

func TestPositionOf(t *testing.T) {
	_, a := testutil.SetupTestApp(t)
	undated := testutil.CreateTestTask(t, a, "someday", "")
	dated := testutil.CreateTestTask(t, a, "soon", "2024-06-20")

	assert.Equal(t, 1, PositionOf(a.TaskStore, models.ListPending, dated.ID))
	assert.Equal(t, 2, PositionOf(a.TaskStore, models.ListPending, undated.ID))
	assert.Equal(t, 0, PositionOf(a.TaskStore, models.ListCompleted, dated.ID))
}

// ============================================================================
// View Flag Tests
// ============================================================================

func TestGetViewFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddViewFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--list", "Completed", "--category", "work", "--search", "Milk"}))

	view, err := GetViewFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, models.ListCompleted, view.List)
	assert.Equal(t, "Work", view.Category)
	assert.Equal(t, "Milk", view.Search)
}

func TestGetViewFlags_Invalid(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	AddViewFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--list", "archive"}))

	_, err := GetViewFlags(cmd)
	assert.ErrorIs(t, err, models.ErrUnknownList)
}

// ============================================================================
// Context Tests
// ============================================================================

func TestGetCLIFromContext(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNoApp)

	_, a := testutil.SetupTestApp(t)
	c, err := GetCLIFromContext(WithApp(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, c.App)
}
