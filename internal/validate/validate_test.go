package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/pkg/ptr"
)

func validBookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		PropertyType:  domain.PropertySemi3,
		Frequency:     domain.FrequencyFourWeekly,
		FullName:      "Jane O'Connor-Smith",
		Email:         "jane@example.com",
		Phone:         "07712 345678",
		Address:       "10 High Street",
		City:          "Street",
		Postcode:      "BA16 0HW",
		ContactMethod: domain.ContactByEmail,
		TermsAgreed:   true,
	}
}

func TestValidateBooking_ValidRequest(t *testing.T) {
	req := validBookingRequest()
	results := ValidateBooking(&req)

	assert.True(t, results.Valid())
	assert.Empty(t, results.Errors())
}

func TestValidateBooking_ReportsEveryMissingField(t *testing.T) {
	req := domain.BookingRequest{}
	results := ValidateBooking(&req)

	require.False(t, results.Valid())
	errs := results.Errors()

	// One error per failed rule, all reported in a single pass.
	for _, field := range []string{
		"propertyType", "frequency", "fullName", "contact",
		"address", "city", "postcode", "contactMethod", "termsAgreed",
	} {
		assert.Contains(t, errs, field)
	}
	assert.Len(t, errs, 9)
}

func TestValidateBooking_ContactMethodRequired(t *testing.T) {
	req := validBookingRequest()
	req.Email = ""
	req.Phone = ""

	results := ValidateBooking(&req)
	errs := results.Errors()

	require.Contains(t, errs, "contact")
	assert.Contains(t, errs["contact"], "at least one contact method")
	assert.NotContains(t, errs, "email")
	assert.NotContains(t, errs, "phone")
}

func TestValidateBooking_OneContactMethodSuffices(t *testing.T) {
	req := validBookingRequest()
	req.Email = ""

	results := ValidateBooking(&req)
	assert.True(t, results.Valid())

	req = validBookingRequest()
	req.Phone = ""

	results = ValidateBooking(&req)
	assert.True(t, results.Valid())
}

func TestValidateBooking_FieldFormats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BookingRequest)
		field   string
	}{
		{"bad email", func(r *domain.BookingRequest) { r.Email = "nope" }, "email"},
		{"bad phone", func(r *domain.BookingRequest) { r.Phone = "12" }, "phone"},
		{"bad postcode", func(r *domain.BookingRequest) { r.Postcode = "XYZ" }, "postcode"},
		{"short name", func(r *domain.BookingRequest) { r.FullName = "J" }, "fullName"},
		{"numeric name", func(r *domain.BookingRequest) { r.FullName = "Jane99" }, "fullName"},
		{"bad property type", func(r *domain.BookingRequest) { r.PropertyType = "mansion" }, "propertyType"},
		{"bad frequency", func(r *domain.BookingRequest) { r.Frequency = "daily" }, "frequency"},
		{"bad contact method", func(r *domain.BookingRequest) { r.ContactMethod = "fax" }, "contactMethod"},
		{"terms not agreed", func(r *domain.BookingRequest) { r.TermsAgreed = false }, "termsAgreed"},
		{"unknown service", func(r *domain.BookingRequest) {
			r.AdditionalServices = []domain.AdditionalService{"chimney"}
		}, "additionalServices"},
		{"oversized notes", func(r *domain.BookingRequest) {
			r.Notes = ptr.Ptr(strings.Repeat("x", 1001))
		}, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			results := ValidateBooking(&req)
			errs := results.Errors()

			require.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateContact(t *testing.T) {
	req := domain.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Please quote for a 3-bed semi.",
	}
	assert.True(t, ValidateContact(&req).Valid())

	req.Message = "short"
	errs := ValidateContact(&req).Errors()
	require.Contains(t, errs, "message")

	empty := domain.ContactRequest{}
	errs = ValidateContact(&empty).Errors()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "message")
	assert.Contains(t, errs, "contact")
}

func TestPhoneFormats(t *testing.T) {
	valid := []string{"07712 345678", "+44 7712 345678", "01458 123456"}
	for _, v := range valid {
		assert.True(t, Phone(v).IsValid, "input=%q", v)
	}

	invalid := []string{"12345", "555-0100", "7712345678"}
	for _, v := range invalid {
		assert.False(t, Phone(v).IsValid, "input=%q", v)
	}
}
