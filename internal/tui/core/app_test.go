package core

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/testutil"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

func TestApp_DelegatesToModel(t *testing.T) {
	_, a := testutil.SetupTestApp(t)
	testutil.CreateTestTask(t, a, "wrapped", "")

	wrapper := New(t.Context(), a, config.Default())
	assert.Nil(t, wrapper.Init())

	updated, _ := wrapper.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Same(t, wrapper, updated)
	assert.Equal(t, 100, wrapper.GetModel().UiState.Width())

	wrapper.Update(tea.KeyPressMsg(tea.Key{Text: "?", Code: '?'}))
	assert.Equal(t, state.HelpMode, wrapper.GetModel().UiState.Mode())

	assert.Contains(t, wrapper.View().Content, "Keyboard Shortcuts")
}
