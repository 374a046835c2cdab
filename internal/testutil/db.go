package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/thenoetrevino/tarea/internal/app"
	"github.com/thenoetrevino/tarea/internal/database"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// FixedNow is the clock used by test apps: noon on 2024-06-15, local time.
// Due dates before 2024-06-15 are overdue.
var FixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

// SetupTestDB creates an in-memory database with the schema applied
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

// SequentialIDs returns a generator producing task-1, task-2, ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

// SetupTestApp creates an app over an in-memory database with a fixed clock
// and predictable task IDs. The app is closed when the test ends.
func SetupTestApp(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := SetupTestDB(t)

	a := app.New(context.Background(), database.NewRepository(db),
		app.WithStoreOptions(
			taskservice.WithClock(func() time.Time { return FixedNow }),
			taskservice.WithIDGenerator(SequentialIDs()),
		))
	t.Cleanup(func() { _ = a.Close() })

	return db, a
}

// CreateTestTask adds a pending task with the given text and due date
func CreateTestTask(t *testing.T, a *app.App, text, due string) models.Task {
	t.Helper()
	d := models.NewDraft()
	d.Text = text
	d.DueDate = due
	task, err := a.TaskStore.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// CreateTestDraft adds a pending task from a full draft
func CreateTestDraft(t *testing.T, a *app.App, d models.Draft) models.Task {
	t.Helper()
	task, err := a.TaskStore.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// CompleteTestTask moves a task to the completed list
func CompleteTestTask(t *testing.T, a *app.App, id string) {
	t.Helper()
	if _, err := a.TaskStore.CompleteByID(context.Background(), id); err != nil {
		t.Fatalf("Failed to complete test task: %v", err)
	}
}
