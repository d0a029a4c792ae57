package store

import "errors"

// Sentinel errors for callers to match with errors.Is().
var (
	// ErrNotFound indicates the referenced folder or file does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraint indicates a referential constraint failed, e.g. a
	// nonexistent parent folder.
	ErrConstraint = errors.New("constraint violation")
)

// ValidationError indicates invalid input (empty or oversized name,
// malformed URL). The message is safe to show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
