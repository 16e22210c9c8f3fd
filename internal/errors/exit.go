package errors

import (
	"errors"
	"fmt"
)

// ExitError carries a process exit code through the CLI error path.
// It lets command handlers translate a solution program's exit status
// into the aoc binary's own exit status without losing the code.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode extracts an exit code from an error chain.
// Returns (code, true) if the chain contains an ExitError.
func GetExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
