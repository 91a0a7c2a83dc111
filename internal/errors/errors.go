// Package errors provides categorized CLI errors for labt.
//
// A CLIError carries a category, a one-line message, an optional usage line
// and remediation steps. The cli package turns a CLIError into an exit code
// and prints it with FormatError unless quiet mode is on.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory classifies a CLIError for display
type ErrorCategory int

const (
	// Argument covers malformed command-line input
	Argument ErrorCategory = iota
	// Configuration covers a configuration that parses but is not runnable
	Configuration
	// Prerequisite covers missing facilities needed before the countdown starts
	Prerequisite
	// Runtime covers failures after startup
	Runtime
)

// String returns the display header for the category
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation hints
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	cause       error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error, if any
func (e *CLIError) Unwrap() error {
	return e.cause
}

// NewConfigError creates a Configuration error
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// Wrap converts err into a CLIError of the given category.
// Returns nil if err is nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		cause:       err,
	}
}

// WrapWithMessage is like Wrap but prefixes the message with context,
// producing "context: inner".
func WrapWithMessage(err error, category ErrorCategory, context string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", context, err.Error()),
		Remediation: remediation,
		cause:       err,
	}
}

// AsCLIError returns the CLIError in err's chain, or nil
func AsCLIError(err error) *CLIError {
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr
	}
	return nil
}
