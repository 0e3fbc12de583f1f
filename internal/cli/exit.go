package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the changelint CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates the changelog passed validation.
	ExitSuccess = 0

	// ExitValidationFailed indicates the changelog violated a mandatory rule.
	ExitValidationFailed = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3
)

// ExitError carries a process exit code through cobra's error return
// without triggering additional error output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func asExitError(err error, target **ExitError) bool {
	return errors.As(err, target)
}
