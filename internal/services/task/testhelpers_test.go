package task

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/thenoetrevino/tarea/internal/database"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

// setupTestRepo creates an in-memory database wrapped in a repository
func setupTestRepo(t testing.TB) *database.Repository {
	t.Helper()
	db, err := database.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	repo := database.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// setupTestStore creates a loaded store with a fixed clock and predictable IDs
func setupTestStore(t testing.TB) (*Store, *database.Repository) {
	t.Helper()
	repo := setupTestRepo(t)
	s := NewStore(repo,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return s, repo
}

// flakyKV wraps a key-value store and fails reads or writes on demand
type flakyKV struct {
	database.KeyValueStore
	failReads  bool
	failWrites bool
}

var errDiskFull = errors.New("disk full")

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failReads {
		return "", false, errDiskFull
	}
	return f.KeyValueStore.Get(ctx, key)
}

func (f *flakyKV) PutMany(ctx context.Context, entries map[string]string) error {
	if f.failWrites {
		return errDiskFull
	}
	return f.KeyValueStore.PutMany(ctx, entries)
}
