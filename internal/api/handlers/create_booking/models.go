package create_booking

import (
	submitBooking "github.com/m04kA/SWC-BookingService/internal/usecase/submit_booking"
)

// CreateBookingRequest HTTP request model. The "website" field is the
// honeypot: hidden on the form, so anything filling it in is a bot.
type CreateBookingRequest struct {
	PropertyType       string   `json:"propertyType"`
	Frequency          string   `json:"frequency"`
	AdditionalServices []string `json:"additionalServices"`
	FullName           string   `json:"fullName"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	Postcode           string   `json:"postcode"`
	ContactMethod      string   `json:"contactMethod"`
	PreferredDate      string   `json:"preferredDate"` // "2025-10-15"
	Notes              string   `json:"notes"`
	TermsAgreed        bool     `json:"termsAgreed"`
	Website            string   `json:"website"`
	CsrfToken          string   `json:"csrfToken"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success          bool   `json:"success"`
	BookingReference string `json:"bookingReference"`
	EstimatedPrice   string `json:"estimatedPrice"`
	Message          string `json:"message"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest(clientKey string) *submitBooking.Request {
	return &submitBooking.Request{
		PropertyType:       r.PropertyType,
		Frequency:          r.Frequency,
		AdditionalServices: r.AdditionalServices,
		FullName:           r.FullName,
		Email:              r.Email,
		Phone:              r.Phone,
		Address:            r.Address,
		City:               r.City,
		Postcode:           r.Postcode,
		ContactMethod:      r.ContactMethod,
		PreferredDate:      r.PreferredDate,
		Notes:              r.Notes,
		TermsAgreed:        r.TermsAgreed,
		Honeypot:           r.Website,
		ClientKey:          clientKey,
	}
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:          true,
		BookingReference: resp.BookingReference,
		EstimatedPrice:   resp.EstimatedPrice,
		Message:          resp.Message,
	}
}
