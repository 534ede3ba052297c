// Package submit_booking implements the booking submission workflow:
// honeypot check, sanitization, validation, rate limiting, authoritative
// pricing, persistence and notification, in that order.
package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/postcode"
	"github.com/m04kA/SWC-BookingService/internal/pricing"
	"github.com/m04kA/SWC-BookingService/internal/sanitize"
	"github.com/m04kA/SWC-BookingService/internal/validate"
)

const successMessage = "Thanks! Your booking request has been received - we'll be in touch shortly."

// UseCase booking submission orchestrator
type UseCase struct {
	bookingRepo  BookingRepository
	classifier   Classifier
	limiter      RateLimiter
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the orchestrator. metrics may be nil.
func NewUseCase(
	bookingRepo BookingRepository,
	classifier Classifier,
	limiter RateLimiter,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		classifier:   classifier,
		limiter:      limiter,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs the submission pipeline for one booking request.
//
// The honeypot check runs first so bot traffic never reaches the real work,
// and rate limiting runs before pricing and persistence to bound load.
// Notification failure after a successful insert is logged and swallowed:
// the booking stands even if email fails.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Honeypot: bots get a fabricated success so they are not tipped off,
	// and nothing is persisted or sent.
	if sanitize.HoneypotTripped(req.Honeypot) {
		uc.logger.Info("SubmitBooking: honeypot tripped, returning decoy success (client=%s)", req.ClientKey)
		return &Response{
			BookingReference: generateReference(now),
			EstimatedPrice:   "Quote Required",
			Message:          successMessage,
		}, nil
	}

	// 2. Sanitize all fields.
	clean, fieldErrs := sanitizeRequest(req)

	// 3. Validate the full object; report every failure at once.
	results := validate.ValidateBooking(clean)
	for field, msg := range results.Errors() {
		fieldErrs[field] = msg
	}
	if len(fieldErrs) > 0 {
		uc.logger.Warn("SubmitBooking: validation failed for %d field(s) (client=%s)", len(fieldErrs), req.ClientKey)
		return nil, &ValidationError{Fields: fieldErrs}
	}

	// 4. Rate limit before any expensive work.
	if allowed, retryAfter := uc.limiter.Allow(req.ClientKey); !allowed {
		uc.logger.Warn("SubmitBooking: rate limited (client=%s, retry_after=%s)", req.ClientKey, retryAfter)
		return nil, &RateLimitError{RetryAfter: retryAfter}
	}

	// 5. Authoritative pricing; any client-supplied figure is ignored.
	quote := pricing.Price(clean.PropertyType, clean.Frequency, clean.AdditionalServices)

	// Normalize the postcode through the classifier when it parses; the
	// verdict itself never blocks a submission - uncovered leads are
	// captured for manual follow-up.
	if match, err := uc.classifier.Classify(clean.Postcode); err == nil {
		clean.Postcode = match.Normalized
		if !match.Covered {
			uc.logger.Info("SubmitBooking: postcode %s outside fixed rounds, flagged for follow-up", match.Normalized)
		}
	} else if !errors.Is(err, postcode.ErrInvalidPostcode) {
		uc.logger.Error("SubmitBooking: classifier error for postcode %q: %v", clean.Postcode, err)
	}

	// 6. Persist.
	record := &domain.BookingRecord{
		PropertyType:        clean.PropertyType,
		Frequency:           clean.Frequency,
		AdditionalServices:  clean.AdditionalServices,
		FullName:            clean.FullName,
		Email:               clean.Email,
		Phone:               clean.Phone,
		Address:             clean.Address,
		City:                clean.City,
		Postcode:            clean.Postcode,
		ContactMethod:       clean.ContactMethod,
		PreferredDate:       clean.PreferredDate,
		Notes:               clean.Notes,
		EstimatedPrice:      quote.Total,
		RequiresManualQuote: quote.RequiresManualQuote,
		Status:              domain.StatusPending,
		BookingReference:    generateReference(now),
		Source:              domain.SourceWebsite,
	}

	created, err := uc.bookingRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to persist booking (client=%s): %v", req.ClientKey, err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	uc.logger.Info("SubmitBooking: booking persisted id=%d reference=%s price=%s",
		created.ID, created.BookingReference, quote.Display())

	if uc.metrics != nil {
		uc.metrics.IncLead("booking")
	}

	// 7. Notify, single attempt. Failure is non-fatal by requirement:
	// never lose a lead because email is down.
	if err := uc.notifier.SendBookingNotification(ctx, created); err != nil {
		uc.logger.Error("SubmitBooking: notification failed for reference=%s: %v", created.BookingReference, err)
	}

	return &Response{
		BookingReference: created.BookingReference,
		EstimatedPrice:   quote.Display(),
		Quote:            quote,
		Message:          successMessage,
	}, nil
}
