package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tarea/internal/models"
	taskservice "github.com/thenoetrevino/tarea/internal/services/task"
)

// ErrInvalidPosition indicates a task position argument that is not a positive number
var ErrInvalidPosition = errors.New("task position must be a positive number")

// Classification describes how a failure is reported to the user
type Classification struct {
	Code       string
	ExitCode   int
	Suggestion string
}

// Classify maps service and parsing errors onto error codes and exit codes
func Classify(err error) Classification {
	switch {
	case errors.Is(err, ErrNoApp):
		return Classification{"INITIALIZATION_ERROR", ExitError, ""}
	case errors.Is(err, ErrInvalidPosition):
		return Classification{"INVALID_POSITION", ExitUsage,
			"Use the number shown by 'tarea task list'"}
	case errors.Is(err, models.ErrUnknownList):
		return Classification{"INVALID_LIST", ExitUsage,
			"Valid lists are: pending, completed"}
	case errors.Is(err, taskservice.ErrIndexOutOfRange), errors.Is(err, taskservice.ErrTaskNotFound):
		return Classification{"TASK_NOT_FOUND", ExitNotFound,
			"Run 'tarea task list' to see current positions"}
	case errors.Is(err, taskservice.ErrInvalidDueDate):
		return Classification{"VALIDATION_ERROR", ExitValidation,
			"Dates use the form YYYY-MM-DD, e.g. 2025-01-31"}
	case errors.Is(err, taskservice.ErrInvalidCategory), errors.Is(err, models.ErrUnknownCategory):
		return Classification{"VALIDATION_ERROR", ExitValidation,
			"Valid categories are: General, Work, Personal, Urgent"}
	case errors.Is(err, taskservice.ErrInvalidPriority), errors.Is(err, models.ErrUnknownPriority):
		return Classification{"VALIDATION_ERROR", ExitValidation,
			"Valid priorities are: Low, Normal, High"}
	case errors.Is(err, taskservice.ErrValidation):
		return Classification{"VALIDATION_ERROR", ExitValidation, ""}
	case errors.Is(err, taskservice.ErrStorage):
		return Classification{"STORAGE_ERROR", ExitDataErr,
			"Check that the database file is writable"}
	default:
		return Classification{"ERROR", ExitError, ""}
	}
}

// Fail reports err through the formatter and returns the error the command
// should return so the process exits with the matching code
func Fail(formatter *OutputFormatter, err error) error {
	c := Classify(err)
	if fmtErr := formatter.ErrorWithSuggestion(c.Code, err.Error(), c.Suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: c.ExitCode, Err: err}
}

// Usage reports a command usage problem with exit code ExitUsage
func Usage(formatter *OutputFormatter, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	if fmtErr := formatter.Error("USAGE_ERROR", err.Error()); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: ExitUsage, Err: err}
}
