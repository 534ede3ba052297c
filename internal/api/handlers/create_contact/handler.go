package create_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
	submitContact "github.com/m04kA/SWC-BookingService/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please check the highlighted fields"
	msgCsrfFailed         = "your session has expired, please reload the page and try again"
	msgRateLimited        = "too many requests, please wait a moment and try again"
	msgNotificationFailed = "we couldn't send your message, please try again or call us directly"
)

type Handler struct {
	useCase SubmitContactUseCase
	csrf    CsrfVerifier
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, csrf CsrfVerifier, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		csrf:    csrf,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !h.csrf.Verify(r, req.CsrfToken) {
		h.logger.Warn("POST /contact - CSRF verification failed: client=%s", handlers.ClientIP(r))
		handlers.RespondForbidden(w, msgCsrfFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(handlers.ClientIP(r)))
	if err != nil {
		var validationErr *submitContact.ValidationError
		var rateLimitErr *submitContact.RateLimitError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /contact - Validation failed: %d field(s), client=%s",
				len(validationErr.Fields), handlers.ClientIP(r))
			handlers.RespondValidation(w, msgValidationFailed, validationErr.Fields)

		case errors.As(err, &rateLimitErr):
			h.logger.Warn("POST /contact - Rate limited: client=%s", handlers.ClientIP(r))
			handlers.RespondRateLimited(w, rateLimitErr.RetryAfter, msgRateLimited)

		case errors.Is(err, submitContact.ErrNotification):
			h.logger.Error("POST /contact - Notification failure: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotificationFailed)

		default:
			h.logger.Error("POST /contact - Failed to submit message: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact - Message submitted: client=%s", handlers.ClientIP(r))
	handlers.RespondJSON(w, http.StatusOK, CreateContactResponse{
		Success: true,
		Message: result.Message,
	})
}
