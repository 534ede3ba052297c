package bookings

import (
	"context"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// BookingRepository persistence interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
	GetByReference(ctx context.Context, reference string) (*domain.BookingRecord, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
