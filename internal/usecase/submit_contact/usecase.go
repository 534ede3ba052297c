// Package submit_contact implements the contact-form workflow. It shares
// the booking pipeline's shape (honeypot, sanitize, validate, rate-check,
// notify) with a smaller field set and a stricter rate limit.
package submit_contact

import (
	"context"
	"fmt"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/sanitize"
	"github.com/m04kA/SWC-BookingService/internal/validate"
)

const successMessage = "Thanks for getting in touch - we'll reply as soon as we can."

// Request is a raw contact-form submission
type Request struct {
	Name    string
	Email   string
	Phone   string
	Message string

	// Honeypot is the decoy field. Real users never fill it in.
	Honeypot string

	// ClientKey identifies the submitting client for rate limiting.
	ClientKey string
}

// Response success contract
type Response struct {
	Message string
}

// UseCase contact submission orchestrator
type UseCase struct {
	notifier Notifier
	limiter  RateLimiter
	metrics  Metrics
	logger   Logger
}

// NewUseCase creates the orchestrator. metrics may be nil.
func NewUseCase(notifier Notifier, limiter RateLimiter, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		notifier: notifier,
		limiter:  limiter,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute runs the submission pipeline for one contact message
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if sanitize.HoneypotTripped(req.Honeypot) {
		uc.logger.Info("SubmitContact: honeypot tripped, returning decoy success (client=%s)", req.ClientKey)
		return &Response{Message: successMessage}, nil
	}

	clean := &domain.ContactRequest{
		Name:    sanitize.Text(req.Name),
		Email:   sanitize.Email(req.Email),
		Phone:   sanitize.Phone(req.Phone),
		Message: sanitize.Message(req.Message),
	}

	results := validate.ValidateContact(clean)
	if !results.Valid() {
		errs := results.Errors()
		uc.logger.Warn("SubmitContact: validation failed for %d field(s) (client=%s)", len(errs), req.ClientKey)
		return nil, &ValidationError{Fields: errs}
	}

	if allowed, retryAfter := uc.limiter.Allow(req.ClientKey); !allowed {
		uc.logger.Warn("SubmitContact: rate limited (client=%s, retry_after=%s)", req.ClientKey, retryAfter)
		return nil, &RateLimitError{RetryAfter: retryAfter}
	}

	if err := uc.notifier.SendContactNotification(ctx, clean); err != nil {
		uc.logger.Error("SubmitContact: notification failed (client=%s): %v", req.ClientKey, err)
		return nil, fmt.Errorf("%w: %v", ErrNotification, err)
	}

	uc.logger.Info("SubmitContact: message relayed (client=%s)", req.ClientKey)

	if uc.metrics != nil {
		uc.metrics.IncLead("contact")
	}

	return &Response{Message: successMessage}, nil
}
