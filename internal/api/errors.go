package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-repository/internal/domain"
	"github.com/phrazzld/task-repository/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation is checked first: the repository reports invalid tasks
	// as repository errors that wrap the validation cause.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidTaskState),
		errors.Is(err, domain.ErrInvalidGlobalID):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrMalformedRecord):
		return http.StatusInternalServerError

	case errors.Is(err, store.ErrRepository):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTaskState):
		return "Invalid task state"
	case errors.Is(err, domain.ErrInvalidGlobalID):
		return "Invalid task id"
	case errors.Is(err, domain.ErrValidation):
		return "Invalid task data"
	case errors.Is(err, store.ErrNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrMalformedRecord):
		return "Stored task could not be read"
	case errors.Is(err, store.ErrRepository):
		return "Task store unavailable"
	default:
		return "An unexpected error occurred"
	}
}
