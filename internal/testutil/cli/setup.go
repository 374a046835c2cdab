package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/models"
	"github.com/thenoetrevino/tarea/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles between testutil and the cli package
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	return testutil.SetupTestApp(t)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, a *app.App, text, due string) models.Task {
	t.Helper()
	return testutil.CreateTestTask(t, a, text, due)
}

// CreateTestDraft wraps testutil.CreateTestDraft for CLI tests
func CreateTestDraft(t *testing.T, a *app.App, d models.Draft) models.Task {
	t.Helper()
	return testutil.CreateTestDraft(t, a, d)
}

// CompleteTestTask wraps testutil.CompleteTestTask for CLI tests
func CompleteTestTask(t *testing.T, a *app.App, id string) {
	t.Helper()
	testutil.CompleteTestTask(t, a, id)
}
