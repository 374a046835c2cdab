package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tarea/internal/tui/state"
)

func TestRender_ContainsTitleAndMessage(t *testing.T) {
	tests := []struct {
		severity Severity
		title    string
	}{
		{Success, "Done"},
		{Info, "Info"},
		{Warning, "Warning"},
		{Error, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out := Render(tt.severity, "Task added!")
			if !strings.Contains(out, tt.title) {
				t.Errorf("banner missing title %q", tt.title)
			}
			if !strings.Contains(out, "Task added!") {
				t.Error("banner missing message")
			}
			// rounded border adds two rows around header and message
			if h := lipgloss.Height(out); h != 4 {
				t.Errorf("height = %d, want 4", h)
			}
		})
	}
}

func TestSeverityOf(t *testing.T) {
	cases := map[state.NotificationLevel]Severity{
		state.LevelSuccess: Success,
		state.LevelInfo:    Info,
		state.LevelWarning: Warning,
		state.LevelError:   Error,
	}
	for level, want := range cases {
		if got := SeverityOf(level); got != want {
			t.Errorf("SeverityOf(%v) = %v, want %v", level, got, want)
		}
	}
}

func TestRenderInline_SingleLine(t *testing.T) {
	out := RenderInline(Warning, "Please enter a task.")
	if lipgloss.Height(out) != 1 {
		t.Errorf("inline notification should be one line, got %d", lipgloss.Height(out))
	}
	if !strings.Contains(out, "Please enter a task.") {
		t.Error("inline notification missing message")
	}
}
