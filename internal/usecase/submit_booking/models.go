package submit_booking

import "github.com/m04kA/SWC-BookingService/internal/domain"

// Request is a raw booking submission. Values are untrusted user input;
// the use case sanitizes and validates everything itself regardless of any
// client-side checks.
type Request struct {
	PropertyType       string
	Frequency          string
	AdditionalServices []string

	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Postcode      string
	ContactMethod string
	PreferredDate string // optional, YYYY-MM-DD
	Notes         string
	TermsAgreed   bool

	// Honeypot is the decoy field. Real users never fill it in.
	Honeypot string

	// ClientKey identifies the submitting client for rate limiting,
	// normally the remote address.
	ClientKey string
}

// Response is the success contract returned to the form
type Response struct {
	BookingReference string
	EstimatedPrice   string // formatted amount or "Quote Required"
	Quote            domain.Quote
	Message          string
}
