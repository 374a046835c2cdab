package task

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tarea/internal/models"
)

// Validation errors. Every one of them matches ErrValidation with errors.Is.
var (
	ErrValidation = errors.New("invalid task")

	ErrEmptyText       = fmt.Errorf("%w: task text cannot be empty", ErrValidation)
	ErrInvalidDueDate  = fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrValidation)
	ErrInvalidCategory = fmt.Errorf("%w: category must be General, Work, Personal or Urgent", ErrValidation)
	ErrInvalidPriority = fmt.Errorf("%w: priority must be Low, Normal or High", ErrValidation)
)

// Lookup errors
var (
	// ErrIndexOutOfRange indicates a position outside the addressed list
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrTaskNotFound indicates an ID that is not in the addressed list
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnknownList indicates a list name other than pending or completed
	ErrUnknownList = models.ErrUnknownList
)

// ErrStorage matches every StorageError
var ErrStorage = errors.New("task storage failure")

// StorageError reports a failed read or write of a persisted list.
// A write failure never rolls back the in-memory change it followed.
type StorageError struct {
	Op  string // "read", "decode", "encode" or "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s tasks: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: %d (list has %d tasks)", ErrIndexOutOfRange, index, length)
}
