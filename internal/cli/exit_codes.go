package cli

import "fmt"

// Exit codes for the labt CLI
const (
	// ExitSuccess indicates the timer expired normally
	ExitSuccess = 0

	// ExitInvalidConfig indicates an unusable configuration or unparsable flags
	ExitInvalidConfig = 1

	// ExitInterrupted indicates the countdown was cancelled by a signal
	ExitInterrupted = 2
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if e, ok := err.(*exitError); ok {
		return e.code
	}
	return ExitInvalidConfig
}
