package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unexpected failures or any error that doesn't fit the
	// specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, a position that is not a number,
	// or an unknown list name.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	// Use for: a position outside the listed view.
	ExitNotFound = 3

	// ExitDataErr indicates stored data could not be read or written.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty text, malformed due dates, unknown categories or priorities.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command.
// The message has already been written by the OutputFormatter.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned from a command onto a process exit code.
// Errors that did not come from a command body are cobra usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
