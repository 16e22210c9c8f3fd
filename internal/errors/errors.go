package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig   = "CONFIG"
	ErrExec     = "EXEC"
	ErrKey      = "KEY"       // malformed or empty key path
	ErrNotFound = "NOT_FOUND" // strict lookup miss
	ErrConflict = "CONFLICT"  // leaf/subtree collision at one key
	ErrPivot    = "PIVOT"     // pivot resolver could not classify a path
	ErrFlush    = "FLUSH"     // reentrant flush attempted
	ErrWeb      = "WEB"
	ErrStore    = "STORE"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrExec code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrExec,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInvalidKey creates an error for an empty or malformed tracker key path.
func NewInvalidKey(detail string) *Error {
	return &Error{
		Code:       ErrKey,
		Message:    fmt.Sprintf("Invalid tracker key: %s", detail),
		Suggestion: "This is a producer contract violation - key paths must be non-empty",
	}
}

// NewKeyNotFound creates an error for a strict lookup miss at the given path.
func NewKeyNotFound(path []string) *Error {
	return &Error{
		Code:       ErrNotFound,
		Message:    fmt.Sprintf("No tracker entry at key '%s'", strings.Join(path, "/")),
		Suggestion: "Use Contains for presence checks instead of Get",
	}
}

// NewKeyConflict creates an error for a leaf/subtree collision at the given path.
func NewKeyConflict(path []string) *Error {
	return &Error{
		Code:       ErrConflict,
		Message:    fmt.Sprintf("Key '%s' is bound to both a value and a subtree", strings.Join(path, "/")),
		Suggestion: "This is a producer contract violation - a key segment holds either a value or children, never both",
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var aocErr *Error
	if errors.As(err, &aocErr) {
		return aocErr.Code == code
	}
	return false
}
