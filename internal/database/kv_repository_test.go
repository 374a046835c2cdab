package database

import (
	"context"
	"testing"
)

func TestKVRepo_GetMissingKey(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	value, found, err := repo.Get(context.Background(), "pendingTasks")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if found {
		t.Errorf("expected key to be absent, got value %q", value)
	}
}

func TestKVRepo_PutOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.Put(ctx, "k", "first"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Put(ctx, "k", "second"); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}

	value, found, err := repo.Get(ctx, "k")
	if err != nil || !found {
		t.Fatalf("Get = %q, %v, %v", value, found, err)
	}
	if value != "second" {
		t.Errorf("expected overwritten value 'second', got %q", value)
	}
}

func TestKVRepo_PutManyAndKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	err := repo.PutMany(ctx, map[string]string{
		"pendingTasks":   "[]",
		"completedTasks": `[{"text":"done"}]`,
	})
	if err != nil {
		t.Fatalf("PutMany failed: %v", err)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "completedTasks" || keys[1] != "pendingTasks" {
		t.Errorf("unexpected keys: %v", keys)
	}

	value, _, _ := repo.Get(ctx, "completedTasks")
	if value != `[{"text":"done"}]` {
		t.Errorf("unexpected completedTasks value %q", value)
	}
}

func TestKVRepo_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	if err := repo.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key should succeed, got %v", err)
	}
	if _, found, _ := repo.Get(ctx, "k"); found {
		t.Error("key still present after Delete")
	}
}
