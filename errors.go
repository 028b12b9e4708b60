// errors.go
package preflight

import (
	"fmt"

	"github.com/arc-language/preflight/pkg/python"
)

// ErrInterpreterNotFound indicates no usable Python interpreter is on PATH.
// Presence checks never surface it; it exists for diagnostics like the
// backends command.
var ErrInterpreterNotFound = python.ErrInterpreterNotFound

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
