package service

import (
	"errors"
	"fmt"
)

// Service-level errors.
var (
	// ErrSetNotFound indicates that no flashcard set exists at the
	// resolved address.
	ErrSetNotFound = errors.New("flashcard set not found")

	// ErrHashCollision indicates that the document at a resolved address
	// belongs to a different (owner, folder, name) triple than the one that
	// was asked for. Collisions are astronomically unlikely, but serving
	// the wrong set silently would be worse than reporting them.
	ErrHashCollision = errors.New("set ID collision: address resolves to a different set")
)

// ServiceError wraps a failure with the operation that produced it.
type ServiceError struct {
	Operation string // e.g. "create_set", "move_set"
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{Operation: operation, Message: message, Err: err}
}
