package get_service_area

import (
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

type Classifier interface {
	Classify(raw string) (domain.ServiceAreaMatch, error)
}

// TimeProvider supplies the current time so visit dates are testable
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
