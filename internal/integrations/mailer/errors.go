package mailer

import "errors"

var (
	// ErrInternal is returned when the request could not be built or sent
	ErrInternal = errors.New("mailer client: internal error")

	// ErrRejected is returned when the provider refuses the notification
	ErrRejected = errors.New("mailer client: notification rejected")
)
