package create_contact

import (
	"context"
	"net/http"

	submitContact "github.com/m04kA/SWC-BookingService/internal/usecase/submit_contact"
)

type SubmitContactUseCase interface {
	Execute(ctx context.Context, req *submitContact.Request) (*submitContact.Response, error)
}

type CsrfVerifier interface {
	Verify(r *http.Request, token string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
