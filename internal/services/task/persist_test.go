package task

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tarea/internal/models"
)

func contents(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		t.ID = ""
		out[i] = t
	}
	return out
}

func TestPersistence_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	s, repo := setupTestStore(t)

	_, err := s.Create(ctx, models.Draft{Text: "Buy milk", DueDate: "2024-07-01", Subtask: "oat"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Draft{Text: "File taxes", Category: "Urgent", Priority: "High"})
	require.NoError(t, err)
	_, err = s.Create(ctx, models.Draft{Text: "Read book", Category: "Personal", Priority: "Low"})
	require.NoError(t, err)
	_, err = s.Complete(ctx, 1)
	require.NoError(t, err)

	restarted := NewStore(repo, WithIDGenerator(sequentialIDs()))
	require.NoError(t, restarted.Load(ctx))

	assert.Equal(t, contents(s.Pending()), contents(restarted.Pending()))
	assert.Equal(t, contents(s.Completed()), contents(restarted.Completed()))
}

func TestPersistence_StoredLayout(t *testing.T) {
	ctx := context.Background()
	s, repo := setupTestStore(t)

	_, err := s.Create(ctx, models.Draft{Text: "Buy milk"})
	require.NoError(t, err)

	pending, found, err := repo.Get(ctx, PendingKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"text":"Buy milk","dueDate":"","category":"General","priority":"Normal","subtask":""}]`, pending)

	completed, found, err := repo.Get(ctx, CompletedKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", completed)
}

func TestLoad_MalformedDataDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	require.NoError(t, repo.PutMany(ctx, map[string]string{
		PendingKey:   `{not json`,
		CompletedKey: `[{"text":"kept","dueDate":"","category":"Work","priority":"High","subtask":""}]`,
	}))

	s := NewStore(repo, WithIDGenerator(sequentialIDs()))
	err := s.Load(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, PendingKey, storageErr.Key)

	assert.Empty(t, s.Pending())
	require.Len(t, s.Completed(), 1)
	assert.Equal(t, "kept", s.Completed()[0].Text)
	assert.Equal(t, "id-1", s.Completed()[0].ID)
}

func TestLoad_NullAndMissingKeys(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	require.NoError(t, repo.Put(ctx, PendingKey, "null"))

	s := NewStore(repo)
	require.NoError(t, s.Load(ctx))
	assert.NotNil(t, s.Pending())
	assert.Empty(t, s.Pending())
	assert.Empty(t, s.Completed())
}

func TestLoad_ReadFailure(t *testing.T) {
	kv := &flakyKV{KeyValueStore: setupTestRepo(t), failReads: true}
	s := NewStore(kv)

	err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Empty(t, s.Pending())
	assert.Empty(t, s.Completed())
}

// A failed write keeps the in-memory change and reports a storage error
func TestSave_WriteFailureKeepsMemoryAuthoritative(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{KeyValueStore: setupTestRepo(t)}
	s := NewStore(kv, WithIDGenerator(sequentialIDs()))
	require.NoError(t, s.Load(ctx))

	kv.failWrites = true
	created, err := s.Create(ctx, models.Draft{Text: "unsaved"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, "unsaved", created.Text)
	require.Len(t, s.Pending(), 1)

	kv.failWrites = false
	require.NoError(t, s.Save(ctx))

	restarted := NewStore(kv)
	require.NoError(t, restarted.Load(ctx))
	require.Len(t, restarted.Pending(), 1)
	assert.Equal(t, "unsaved", restarted.Pending()[0].Text)
}
