package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// BookingRepository persistence interface
type BookingRepository interface {
	Create(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error)
}

// Classifier postcode coverage interface
type Classifier interface {
	Classify(raw string) (domain.ServiceAreaMatch, error)
}

// RateLimiter submission throttle interface
type RateLimiter interface {
	Allow(key string) (allowed bool, retryAfter time.Duration)
}

// Notifier notification collaborator interface.
// Failures are logged and swallowed: a lead is never lost because email failed.
type Notifier interface {
	SendBookingNotification(ctx context.Context, record *domain.BookingRecord) error
}

// Metrics lead counters (optional, may be nil)
type Metrics interface {
	IncLead(kind string)
}

// TimeProvider time source (for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time source
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
