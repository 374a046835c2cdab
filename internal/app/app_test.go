package app

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/tarea/internal/database"
	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	repo := setupTestRepo(t)
	app := New(context.Background(), repo)
	defer func() { _ = app.Close() }()

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskStore == nil {
		t.Error("Expected TaskStore to be initialized")
	}
	if app.Editor == nil {
		t.Error("Expected Editor to be initialized")
	}
	if app.LoadErr != nil {
		t.Errorf("Expected clean load, got %v", app.LoadErr)
	}
	if app.Repo() != repo {
		t.Error("Repo() should return the injected repository")
	}
}

func TestNew_RestoresSavedTasks(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	if err := repo.Put(ctx, taskservice.PendingKey,
		`[{"text":"Water plants","dueDate":"2024-01-01","category":"Personal","priority":"Low","subtask":""}]`); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.Local)
	app := New(ctx, repo, WithStoreOptions(taskservice.WithClock(func() time.Time { return now })))
	defer func() { _ = app.Close() }()

	pending := app.TaskStore.Pending()
	if len(pending) != 1 || pending[0].Category != models.CategoryPersonal {
		t.Fatalf("unexpected pending: %+v", pending)
	}
	if !app.TaskStore.IsOverdue(pending[0].DueDate) {
		t.Error("clock option should reach the store")
	}
}

func TestNew_CorruptDataSetsLoadErr(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	if err := repo.Put(ctx, taskservice.CompletedKey, "garbage"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	app := New(ctx, repo)
	defer func() { _ = app.Close() }()

	if app.LoadErr == nil {
		t.Error("Expected LoadErr for corrupt completed list")
	}
	if n := len(app.TaskStore.Completed()); n != 0 {
		t.Errorf("Expected empty completed list, got %d tasks", n)
	}
}
