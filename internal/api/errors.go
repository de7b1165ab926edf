package api

import (
	"errors"
	"net/http"

	"github.com/mnemo-app/mnemo-api/internal/address"
	"github.com/mnemo-app/mnemo-api/internal/domain"
	"github.com/mnemo-app/mnemo-api/internal/service"
	"github.com/mnemo-app/mnemo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrSetNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, service.ErrHashCollision):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, address.ErrInvalidAddress),
		errors.Is(err, store.ErrInvalidPath),
		errors.Is(err, domain.ErrSetIDEmpty),
		errors.Is(err, domain.ErrSetNameEmpty),
		errors.Is(err, domain.ErrReviewStateNegative),
		errors.Is(err, domain.ErrMalformedDate):
		return http.StatusBadRequest

	// Backend unavailability
	case errors.Is(err, store.ErrStorageUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
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
	case errors.Is(err, service.ErrSetNotFound):
		return "Flashcard set not found"

	case errors.Is(err, service.ErrHashCollision):
		return "A different flashcard set already occupies this address"

	case errors.Is(err, address.ErrInvalidAddress),
		errors.Is(err, store.ErrInvalidPath):
		return "Invalid user or folder location"

	case errors.Is(err, domain.ErrSetIDEmpty),
		errors.Is(err, domain.ErrSetNameEmpty):
		return "Invalid flashcard set data"

	case errors.Is(err, domain.ErrReviewStateNegative),
		errors.Is(err, domain.ErrMalformedDate):
		return "Invalid card data"

	case errors.Is(err, store.ErrStorageUnavailable):
		return "Storage temporarily unavailable"

	default:
		return "An unexpected error occurred"
	}
}
