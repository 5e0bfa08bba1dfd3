package cli

import (
	"errors"
	"fmt"

	"github.com/gopidesupavan/infrastructure-actions/internal/refstore"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (malformed steps, write errors)
	ExitCommandError = 2 // Command error (missing or unreadable input files)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure for untyped errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// wrapOpError maps a gateway operation error to an ExitError. Input load
// failures are command errors (bad paths, malformed files); everything else
// is an operation failure.
func wrapOpError(op string, err error) error {
	if err == nil {
		return nil
	}
	code := ExitFailure
	var loadErr *refstore.LoadError
	if errors.As(err, &loadErr) {
		code = ExitCommandError
	}
	return &ExitError{Code: code, Message: op + " failed", Err: err}
}
