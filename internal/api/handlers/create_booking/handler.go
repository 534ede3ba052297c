package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
	submitBooking "github.com/m04kA/SWC-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please check the highlighted fields"
	msgCsrfFailed         = "your session has expired, please reload the page and try again"
	msgRateLimited        = "too many requests, please wait a moment and try again"
	msgPersistenceFailed  = "we couldn't save your booking, please try again or call us directly"
)

type Handler struct {
	useCase SubmitBookingUseCase
	csrf    CsrfVerifier
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, csrf CsrfVerifier, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		csrf:    csrf,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !h.csrf.Verify(r, req.CsrfToken) {
		h.logger.Warn("POST /bookings - CSRF verification failed: client=%s", handlers.ClientIP(r))
		handlers.RespondForbidden(w, msgCsrfFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(handlers.ClientIP(r)))
	if err != nil {
		var validationErr *submitBooking.ValidationError
		var rateLimitErr *submitBooking.RateLimitError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %d field(s), client=%s",
				len(validationErr.Fields), handlers.ClientIP(r))
			handlers.RespondValidation(w, msgValidationFailed, validationErr.Fields)

		case errors.As(err, &rateLimitErr):
			h.logger.Warn("POST /bookings - Rate limited: client=%s", handlers.ClientIP(r))
			handlers.RespondRateLimited(w, rateLimitErr.RetryAfter, msgRateLimited)

		case errors.Is(err, submitBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Persistence failure: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPersistenceFailed)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted: reference=%s", result.BookingReference)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
