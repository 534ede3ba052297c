package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidStatus is returned for unknown status values
	ErrInvalidStatus = errors.New("bookings.service: invalid status")

	// ErrInvalidTransition is returned when a status change is not allowed,
	// e.g. reopening a completed or cancelled booking
	ErrInvalidTransition = errors.New("bookings.service: status transition not allowed")

	// ErrInvalidInput is returned for malformed filter input
	ErrInvalidInput = errors.New("bookings.service: invalid input")

	// ErrInternal is returned for unexpected repository failures
	ErrInternal = errors.New("bookings.service: internal error")
)
