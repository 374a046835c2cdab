package tutorial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tarea/internal/testutil"
)

func TestTutorialCmd_Raw(t *testing.T) {
	cmd := TutorialCmd()
	cmd.SetArgs([]string{"--raw"})

	out := testutil.CaptureOutput(t, func() {
		assert.NoError(t, cmd.Execute())
	})

	assert.Equal(t, tutorialContent, out)
	assert.Contains(t, out, "tarea task add")
}

func TestRender_StyledKeepsText(t *testing.T) {
	out := render("# heading\n\nsome body", false)

	assert.Contains(t, out, "heading")
	assert.Contains(t, out, "some body")
}
