package submit_contact

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation is returned when one or more fields fail validation
	ErrValidation = errors.New("submit_contact: validation failed")

	// ErrRateLimited is returned when the client exceeded the submission limit
	ErrRateLimited = errors.New("submit_contact: rate limited")

	// ErrNotification is returned when the message could not be delivered.
	// Unlike bookings there is nothing persisted here, so a failed send is
	// surfaced to the user instead of being swallowed.
	ErrNotification = errors.New("submit_contact: failed to send message")
)

// ValidationError carries every field failure found
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit_contact: validation failed for %d field(s)", len(e.Fields))
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
	return fmt.Sprintf("submit_contact: rate limited, retry after %s", e.RetryAfter)
}

// Unwrap allows errors.Is(err, ErrRateLimited)
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
