package submit_booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/postcode"
)

type fakeRepo struct {
	created *domain.BookingRecord
	err     error
}

func (f *fakeRepo) Create(_ context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	record.ID = 42
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.created = record
	return record, nil
}

type fakeLimiter struct {
	allowed    bool
	retryAfter time.Duration
	calls      int
}

func (f *fakeLimiter) Allow(string) (bool, time.Duration) {
	f.calls++
	return f.allowed, f.retryAfter
}

type fakeNotifier struct {
	err      error
	received *domain.BookingRecord
	calls    int
}

func (f *fakeNotifier) SendBookingNotification(_ context.Context, record *domain.BookingRecord) error {
	f.calls++
	f.received = record
	return f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, limiter *fakeLimiter, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, postcode.NewClassifier(nil), limiter, notifier, nil, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		PropertyType:  "semi-3",
		Frequency:     "4weekly",
		FullName:      "Jane Smith",
		Email:         "Jane@Example.com",
		Phone:         "07712 345678",
		Address:       "10 High Street",
		City:          "Street",
		Postcode:      "ba160hw",
		ContactMethod: "email",
		TermsAgreed:   true,
		ClientKey:     "203.0.113.9",
	}
}

var referenceRe = regexp.MustCompile(`^SWC250828[0-9]{4}$`)

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	limiter := &fakeLimiter{allowed: true}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, limiter, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, referenceRe, resp.BookingReference)
	assert.Equal(t, "£25.00", resp.EstimatedPrice)
	assert.False(t, resp.Quote.RequiresManualQuote)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, "jane@example.com", repo.created.Email)
	assert.Equal(t, "BA16 0HW", repo.created.Postcode)
	assert.Equal(t, 25.0, repo.created.EstimatedPrice)
	assert.Equal(t, domain.SourceWebsite, repo.created.Source)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, repo.created, notifier.received)
}

func TestExecute_HoneypotReturnsDecoySuccess(t *testing.T) {
	repo := &fakeRepo{}
	limiter := &fakeLimiter{allowed: true}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, limiter, notifier)

	req := validRequest()
	req.Honeypot = "http://spam.example"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Looks exactly like a success to the bot...
	assert.Regexp(t, referenceRe, resp.BookingReference)
	assert.Equal(t, successMessage, resp.Message)

	// ...but nothing happened.
	assert.Nil(t, repo.created)
	assert.Equal(t, 0, notifier.calls)
	assert.Equal(t, 0, limiter.calls)
}

func TestExecute_ValidationReportsAllFields(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req := validRequest()
	req.Email = ""
	req.Phone = ""
	req.Postcode = "nope"

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "contact")
	assert.Contains(t, verr.Fields, "postcode")
	assert.Contains(t, verr.Fields["contact"], "at least one contact method")
}

func TestExecute_SanitizesHostileInput(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req := validRequest()
	req.Address = `<script>alert("x")</script>10 High Street`
	req.Notes = "please call <b>after 5</b>"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotContains(t, repo.created.Address, "<")
	assert.NotContains(t, repo.created.Address, "script>")
	require.NotNil(t, repo.created.Notes)
	assert.Equal(t, "please call after 5", *repo.created.Notes)
}

func TestExecute_RateLimited(t *testing.T) {
	repo := &fakeRepo{}
	limiter := &fakeLimiter{allowed: false, retryAfter: 90 * time.Second}
	uc := newTestUseCase(repo, limiter, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrRateLimited)

	var rerr *RateLimitError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 90*time.Second, rerr.RetryAfter)
	assert.Nil(t, repo.created)
}

func TestExecute_ManualQuoteCategory(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req := validRequest()
	req.PropertyType = "commercial"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "Quote Required", resp.EstimatedPrice)
	assert.True(t, repo.created.RequiresManualQuote)
	assert.Equal(t, 0.0, repo.created.EstimatedPrice)
}

func TestExecute_GutterBundle(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req := validRequest()
	req.PropertyType = "semi-2"
	req.AdditionalServices = []string{"gutterInternal", "gutterExternal"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Quote.FreeWindowCleaning)
	assert.Equal(t, "£120.00", resp.EstimatedPrice)
}

func TestExecute_PersistenceFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, 0, notifier.calls)
}

func TestExecute_NotificationFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{err: errors.New("smtp timeout")}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())

	// The booking stands even though email failed.
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
	assert.Regexp(t, referenceRe, resp.BookingReference)
}

func TestExecute_UncoveredPostcodeStillAccepted(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeLimiter{allowed: true}, &fakeNotifier{})

	req := validRequest()
	req.Postcode = "DT1 1AA"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "DT1 1AA", repo.created.Postcode)
}
