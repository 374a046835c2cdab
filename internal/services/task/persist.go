package task

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/thenoetrevino/tarea/internal/models"
)

// Load replaces both lists with what storage holds. A key that is absent,
// unreadable or not a JSON task array yields an empty list; the returned
// error joins a StorageError for every key that could not be used.
func (s *Store) Load(ctx context.Context) error {
	pending, errPending := s.readList(ctx, PendingKey)
	completed, errCompleted := s.readList(ctx, CompletedKey)

	s.mu.Lock()
	s.pending = pending
	s.completed = completed
	s.mu.Unlock()

	return errors.Join(errPending, errCompleted)
}

// Save writes both lists without mutating anything
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *Store) readList(ctx context.Context, key string) ([]models.Task, error) {
	raw, found, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Failed to read task list, starting empty", "key", key, "error", err)
		return []models.Task{}, &StorageError{Op: "read", Key: key, Err: err}
	}
	if !found {
		return []models.Task{}, nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("Stored task list is malformed, starting empty", "key", key, "error", err)
		return []models.Task{}, &StorageError{Op: "decode", Key: key, Err: err}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	for i := range tasks {
		tasks[i].ID = s.newID()
	}
	return tasks, nil
}

// save must be called with the lock held
func (s *Store) save(ctx context.Context) error {
	pending, err := encodeList(s.pending)
	if err != nil {
		return &StorageError{Op: "encode", Key: PendingKey, Err: err}
	}
	completed, err := encodeList(s.completed)
	if err != nil {
		return &StorageError{Op: "encode", Key: CompletedKey, Err: err}
	}

	err = s.kv.PutMany(ctx, map[string]string{
		PendingKey:   pending,
		CompletedKey: completed,
	})
	if err != nil {
		s.logger.Error("Failed to save tasks", "error", err)
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func encodeList(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
