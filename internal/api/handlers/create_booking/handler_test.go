package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitBooking "github.com/m04kA/SWC-BookingService/internal/usecase/submit_booking"
)

type fakeUseCase struct {
	gotReq *submitBooking.Request
	resp   *submitBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeCsrf struct {
	ok bool
}

func (f *fakeCsrf) Verify(*http.Request, string) bool { return f.ok }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postBooking(t *testing.T, handler *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	r.RemoteAddr = "203.0.113.9:41000"
	w := httptest.NewRecorder()
	handler.Handle(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		BookingReference: "SWC2508281234",
		EstimatedPrice:   "£60.00",
		Message:          "Thanks!",
	}}
	handler := NewHandler(uc, &fakeCsrf{ok: true}, nopLogger{})

	w := postBooking(t, handler, CreateBookingRequest{
		PropertyType: "semi-3",
		Frequency:    "4weekly",
		FullName:     "Jane Smith",
		Email:        "jane@example.com",
		Postcode:     "BA16 0HW",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "SWC2508281234", resp.BookingReference)
	assert.Equal(t, "£60.00", resp.EstimatedPrice)

	// Client key for rate limiting comes from the remote address.
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "203.0.113.9", uc.gotReq.ClientKey)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, &fakeCsrf{ok: true}, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	handler.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandle_CsrfRejected(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, &fakeCsrf{ok: false}, nopLogger{})

	w := postBooking(t, handler, CreateBookingRequest{PropertyType: "semi-3"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Nil(t, uc.gotReq, "use case must not run on CSRF failure")
}

func TestHandle_ValidationErrors(t *testing.T) {
	uc := &fakeUseCase{err: &submitBooking.ValidationError{
		Fields: map[string]string{"postcode": "please enter a valid UK postcode"},
	}}
	handler := NewHandler(uc, &fakeCsrf{ok: true}, nopLogger{})

	w := postBooking(t, handler, CreateBookingRequest{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "please enter a valid UK postcode", resp.Details["postcode"])
}

func TestHandle_RateLimited(t *testing.T) {
	uc := &fakeUseCase{err: &submitBooking.RateLimitError{RetryAfter: 90 * time.Second}}
	handler := NewHandler(uc, &fakeCsrf{ok: true}, nopLogger{})

	w := postBooking(t, handler, CreateBookingRequest{})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "90", w.Header().Get("Retry-After"))
}

func TestHandle_PersistenceFailure(t *testing.T) {
	uc := &fakeUseCase{err: submitBooking.ErrPersistence}
	handler := NewHandler(uc, &fakeCsrf{ok: true}, nopLogger{})

	w := postBooking(t, handler, CreateBookingRequest{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
