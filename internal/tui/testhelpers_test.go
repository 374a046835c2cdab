package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/config"
	"github.com/thenoetrevino/tarea/internal/testutil"
)

// setupTestModel returns a sized model over an empty in-memory store
func setupTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	_, a := testutil.SetupTestApp(t)

	m := InitialModel(context.Background(), a, config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), a
}

// press sends one key press and returns the updated model
func press(t *testing.T, m Model, msg tea.KeyPressMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, runeKey(r))
	}
	return m
}

var (
	keyEsc   = tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	keyEnter = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	keyTab   = tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	keySpace = tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	keyCtrlS = tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	keyDown  = tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
)
