package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when nothing is stored at or under the
	// requested address.
	ErrNotFound = errors.New("document not found")

	// ErrStorageUnavailable is returned when the underlying backend failed
	// or timed out. It is retryable: callers must not assume data loss.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidPath is returned when an address is structurally unusable,
	// for example an empty string.
	ErrInvalidPath = errors.New("invalid document path")
)

// IsRetryable reports whether the error indicates a transient backend
// failure that a caller may retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// StoreError carries the operation and address context for a failed store
// call. The wrapped error preserves the taxonomy kind for errors.Is checks.
type StoreError struct {
	Op   string // the operation that failed (e.g. "get", "rename")
	Path string // the address the operation targeted
	Err  error  // underlying cause
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError for the given operation and address.
func NewStoreError(op, path string, err error) *StoreError {
	return &StoreError{Op: op, Path: path, Err: err}
}
