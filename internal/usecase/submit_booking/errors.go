package submit_booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation is returned when one or more fields fail validation
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrRateLimited is returned when the client exceeded the submission limit
	ErrRateLimited = errors.New("submit_booking: rate limited")

	// ErrPersistence is returned when the booking could not be stored
	ErrPersistence = errors.New("submit_booking: failed to persist booking")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("submit_booking: internal error")
)

// ValidationError carries every field failure found, so the user can fix
// everything in one pass
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_booking: validation failed for %d field(s)", len(e.Fields))
}

// Unwrap allows errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RateLimitError carries the retry hint for the 429 response
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("submit_booking: rate limited, retry after %s", e.RetryAfter)
}

// Unwrap allows errors.Is(err, ErrRateLimited)
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
