package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested record does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrRepository is the single opaque error kind reported when the
	// underlying store request fails: the write was rejected, the transport
	// failed or the caller was not authorized. Check the wrapped error for
	// the backend's own detail.
	ErrRepository = errors.New("repository request failed")

	// ErrMalformedRecord is returned when a stored record cannot be decoded
	// into a Task: a required attribute is missing, an attribute is not
	// string-typed, or the state is not a known TaskState.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrTaskNotFound indicates that no task is stored under the requested id.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "task")
	Operation string // The operation that failed (e.g., "put", "get")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewRepositoryError wraps a backend failure so that it matches ErrRepository
// while keeping the cause reachable through errors.Is/errors.As.
func NewRepositoryError(entity, operation, message string, cause error) *StoreError {
	if cause == nil {
		return NewStoreError(entity, operation, message, ErrRepository)
	}
	return NewStoreError(entity, operation, message, fmt.Errorf("%w: %w", ErrRepository, cause))
}

// MalformedRecordError describes why a stored record could not be decoded.
type MalformedRecordError struct {
	Field  string // Attribute name that failed
	Reason string // Human-readable cause
	Err    error  // Optional underlying error, e.g. domain.ErrInvalidTaskState
}

// Error implements the error interface for MalformedRecordError.
func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: attribute %q %s: %v", ErrMalformedRecord, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: attribute %q %s", ErrMalformedRecord, e.Field, e.Reason)
}

// Is makes every MalformedRecordError match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// Unwrap returns the underlying error, if any.
func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
