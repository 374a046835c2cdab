package task

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tarea/internal/database"
	"github.com/thenoetrevino/tarea/internal/duedate"
	"github.com/thenoetrevino/tarea/internal/models"
)

// Storage keys for the two lists
const (
	PendingKey   = "pendingTasks"
	CompletedKey = "completedTasks"
)

// Store owns the pending and completed lists. Every mutation is followed by
// a save of both lists; views are computed fresh on each call.
type Store struct {
	mu        sync.Mutex
	kv        database.KeyValueStore
	pending   []models.Task
	completed []models.Task

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now for overdue checks
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID generator used for session IDs
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithLogger sets the logger used for storage warnings
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates an empty store backed by kv. Call Load to restore saved lists.
func NewStore(kv database.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// INDEX OPERATIONS
// ============================================================================

// Create validates draft and appends the resulting task to pending
func (s *Store) Create(ctx context.Context, draft models.Draft) (models.Task, error) {
	t, err := validate(draft)
	if err != nil {
		return models.Task{}, err
	}

	err = s.mutate(ctx, func() error {
		t.ID = s.newID()
		s.pending = append(s.pending, t)
		return nil
	})
	return t, err
}

// Update replaces pending[index] with the validated draft, keeping its ID
func (s *Store) Update(ctx context.Context, index int, draft models.Draft) (models.Task, error) {
	t, err := validate(draft)
	if err != nil {
		return models.Task{}, err
	}

	err = s.mutate(ctx, func() error {
		if index < 0 || index >= len(s.pending) {
			return indexError(index, len(s.pending))
		}
		t.ID = s.pending[index].ID
		s.pending[index] = t
		return nil
	})
	if err != nil && !isStorage(err) {
		return models.Task{}, err
	}
	return t, err
}

// Complete moves pending[index] to the end of completed
func (s *Store) Complete(ctx context.Context, index int) (models.Task, error) {
	var moved models.Task
	err := s.mutate(ctx, func() error {
		var err error
		moved, err = s.move(models.ListPending, index)
		return err
	})
	return moved, err
}

// Reopen moves completed[index] to the end of pending
func (s *Store) Reopen(ctx context.Context, index int) (models.Task, error) {
	var moved models.Task
	err := s.mutate(ctx, func() error {
		var err error
		moved, err = s.move(models.ListCompleted, index)
		return err
	})
	return moved, err
}

// Remove deletes the task at index from the named list
func (s *Store) Remove(ctx context.Context, index int, list models.ListName) (models.Task, error) {
	var removed models.Task
	err := s.mutate(ctx, func() error {
		src, err := s.list(list)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(*src) {
			return indexError(index, len(*src))
		}
		removed = (*src)[index]
		*src = slices.Delete(*src, index, index+1)
		return nil
	})
	return removed, err
}

// ============================================================================
// ID OPERATIONS
// ============================================================================

// UpdateByID replaces the pending task with the given ID
func (s *Store) UpdateByID(ctx context.Context, id string, draft models.Draft) (models.Task, error) {
	index, ok := s.indexOf(models.ListPending, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.Update(ctx, index, draft)
}

// CompleteByID moves the pending task with the given ID to completed
func (s *Store) CompleteByID(ctx context.Context, id string) (models.Task, error) {
	index, ok := s.indexOf(models.ListPending, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.Complete(ctx, index)
}

// ReopenByID moves the completed task with the given ID back to pending
func (s *Store) ReopenByID(ctx context.Context, id string) (models.Task, error) {
	index, ok := s.indexOf(models.ListCompleted, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.Reopen(ctx, index)
}

// Toggle completes a pending task or reopens a completed one.
// It returns the list the task now belongs to.
func (s *Store) Toggle(ctx context.Context, id string) (models.Task, models.ListName, error) {
	_, list, ok := s.Find(id)
	if !ok {
		return models.Task{}, "", fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if list == models.ListPending {
		t, err := s.CompleteByID(ctx, id)
		return t, models.ListCompleted, err
	}
	t, err := s.ReopenByID(ctx, id)
	return t, models.ListPending, err
}

// RemoveByID deletes the task with the given ID from whichever list holds it
func (s *Store) RemoveByID(ctx context.Context, id string) (models.Task, models.ListName, error) {
	_, list, ok := s.Find(id)
	if !ok {
		return models.Task{}, "", fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	index, _ := s.indexOf(list, id)
	t, err := s.Remove(ctx, index, list)
	return t, list, err
}

// Find looks up a task by ID in both lists
func (s *Store) Find(id string) (models.Task, models.ListName, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, list := range []models.ListName{models.ListPending, models.ListCompleted} {
		src, _ := s.list(list)
		for _, t := range *src {
			if t.ID == id {
				return t, list, true
			}
		}
	}
	return models.Task{}, "", false
}

// ============================================================================
// QUERIES
// ============================================================================

// View returns the tasks of list whose text contains search (ignoring case)
// and whose category equals category, or every category when category is
// "all" or empty. The result is sorted by due date; undated tasks come last
// and ties keep list order. The returned slice is a copy.
func (s *Store) View(list models.ListName, search, category string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.list(list)
	if err != nil {
		return nil
	}

	needle := strings.ToLower(search)
	matchAll := category == "" || category == models.CategoryFilterAll

	out := make([]models.Task, 0, len(*src))
	for _, t := range *src {
		if !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		if !matchAll && string(t.Category) != category {
			continue
		}
		out = append(out, t)
	}

	slices.SortStableFunc(out, func(a, b models.Task) int {
		return duedate.Compare(a.DueDate, b.DueDate)
	})
	return out
}

// IsOverdue reports whether dueDate is a calendar day before today
func (s *Store) IsOverdue(dueDate string) bool {
	return duedate.IsOverdue(dueDate, s.now())
}

// Pending returns a copy of the pending list in stored order
func (s *Store) Pending() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pending)
}

// Completed returns a copy of the completed list in stored order
func (s *Store) Completed() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.completed)
}

// Counts summarizes both lists
type Counts struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Overdue   int `json:"overdue"`
}

// Counts returns list sizes and the number of overdue pending tasks
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := Counts{Pending: len(s.pending), Completed: len(s.completed)}
	for _, t := range s.pending {
		if duedate.IsOverdue(t.DueDate, now) {
			c.Overdue++
		}
	}
	return c
}

// ============================================================================
// INTERNALS
// ============================================================================

// mutate runs fn under the lock and saves both lists if fn succeeded
func (s *Store) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}
	return s.save(ctx)
}

func (s *Store) list(name models.ListName) (*[]models.Task, error) {
	switch name {
	case models.ListPending:
		return &s.pending, nil
	case models.ListCompleted:
		return &s.completed, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
}

// move must be called with the lock held
func (s *Store) move(from models.ListName, index int) (models.Task, error) {
	src, err := s.list(from)
	if err != nil {
		return models.Task{}, err
	}
	dst, _ := s.list(from.Other())

	if index < 0 || index >= len(*src) {
		return models.Task{}, indexError(index, len(*src))
	}
	t := (*src)[index]
	*src = slices.Delete(*src, index, index+1)
	*dst = append(*dst, t)
	return t, nil
}

func (s *Store) indexOf(list models.ListName, id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.list(list)
	if err != nil {
		return -1, false
	}
	i := slices.IndexFunc(*src, func(t models.Task) bool { return t.ID == id })
	return i, i >= 0
}

// validate trims and parses a draft into a task without an ID
func validate(d models.Draft) (models.Task, error) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}

	due, ok := duedate.Normalize(d.DueDate)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidDueDate, due)
	}

	category, err := models.ParseCategory(d.Category)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidCategory, d.Category)
	}

	priority, err := models.ParsePriority(d.Priority)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, d.Priority)
	}

	return models.Task{
		Text:     text,
		DueDate:  due,
		Category: category,
		Priority: priority,
		Subtask:  strings.TrimSpace(d.Subtask),
	}, nil
}
