package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SWC-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SWC-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SWC-BookingService/pkg/ptr"
)

type fakeRepo struct {
	records       map[int64]*domain.BookingRecord
	updatedStatus map[int64]domain.BookingStatus
	listFilter    domain.BookingsFilter
}

func newFakeRepo(records ...*domain.BookingRecord) *fakeRepo {
	repo := &fakeRepo{
		records:       make(map[int64]*domain.BookingRecord),
		updatedStatus: make(map[int64]domain.BookingStatus),
	}
	for _, r := range records {
		repo.records[r.ID] = r
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.BookingRecord, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return record, nil
}

func (f *fakeRepo) GetByReference(_ context.Context, reference string) (*domain.BookingRecord, error) {
	for _, record := range f.records {
		if record.BookingReference == reference {
			return record, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.BookingRecord, error) {
	f.listFilter = filter
	out := make([]*domain.BookingRecord, 0, len(f.records))
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.records[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleRecord() *domain.BookingRecord {
	date := time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)
	return &domain.BookingRecord{
		ID:                 7,
		PropertyType:       domain.PropertySemi3,
		Frequency:          domain.FrequencyFourWeekly,
		AdditionalServices: []domain.AdditionalService{domain.ServiceSolar},
		FullName:           "Jane Smith",
		Email:              "jane@example.com",
		Address:            "10 High Street",
		City:               "Street",
		Postcode:           "BA16 0HW",
		ContactMethod:      domain.ContactByEmail,
		PreferredDate:      &date,
		EstimatedPrice:     65,
		Status:             domain.StatusPending,
		BookingReference:   "SWC2508281234",
		Source:             domain.SourceWebsite,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(sampleRecord()), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "SWC2508281234", resp.BookingReference)
	assert.Equal(t, []string{"solar"}, resp.AdditionalServices)
	require.NotNil(t, resp.PreferredDate)
	assert.Equal(t, "2025-09-16", *resp.PreferredDate)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference(t *testing.T) {
	svc := NewService(newFakeRepo(sampleRecord()), nopLogger{})

	resp, err := svc.GetByReference(context.Background(), "SWC2508281234")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	_, err = svc.GetByReference(context.Background(), "SWC0000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_FilterConversion(t *testing.T) {
	repo := newFakeRepo(sampleRecord())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status:    ptr.Ptr("pending"),
		StartDate: ptr.Ptr("2025-08-01"),
		EndDate:   ptr.Ptr("2025-08-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.listFilter.Status)
	require.NotNil(t, repo.listFilter.EndDate)
	// End date is inclusive of the whole day.
	assert.Equal(t, 31, repo.listFilter.EndDate.Day())

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("sideways")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(sampleRecord())
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusContacted, repo.updatedStatus[7])
}

func TestUpdateStatus_Rejections(t *testing.T) {
	record := sampleRecord()
	record.Status = domain.StatusCompleted
	repo := newFakeRepo(record)
	svc := NewService(repo, nopLogger{})

	// Terminal statuses cannot be reopened.
	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "contacted"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancellationIsAStatusChange(t *testing.T) {
	repo := newFakeRepo(sampleRecord())
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus[7])

	// The record still exists after cancellation.
	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, resp)
}
