package create_booking

import (
	"context"
	"net/http"

	submitBooking "github.com/m04kA/SWC-BookingService/internal/usecase/submit_booking"
)

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type CsrfVerifier interface {
	Verify(r *http.Request, token string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
