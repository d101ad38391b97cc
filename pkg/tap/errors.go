package tap

import "fmt"

// OperationError provides context about which action failed on which path.
type OperationError struct {
	Op     string // Operation type (e.g., "write-file", "chmod")
	Path   string // Path being operated on
	Action string // Human-readable action (e.g., "create or open file")
	Err    error  // Underlying error
}

// Error returns a formatted error message.
func (e *OperationError) Error() string {
	return fmt.Sprintf("failed to %s '%s': %v", e.Action, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// wrapError wraps an error with operation context. Errors that already
// carry context pass through unchanged.
func wrapError(op, action, path string, err error) error {
	if err == nil {
		return nil
	}
	if opErr, ok := err.(*OperationError); ok {
		return opErr
	}
	return &OperationError{
		Op:     op,
		Path:   path,
		Action: action,
		Err:    err,
	}
}
