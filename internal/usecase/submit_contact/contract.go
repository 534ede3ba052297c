package submit_contact

import (
	"context"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// Notifier notification collaborator interface
type Notifier interface {
	SendContactNotification(ctx context.Context, req *domain.ContactRequest) error
}

// RateLimiter submission throttle interface
type RateLimiter interface {
	Allow(key string) (allowed bool, retryAfter time.Duration)
}

// Metrics lead counters (optional, may be nil)
type Metrics interface {
	IncLead(kind string)
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
