package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// BookingResponse staff-facing view of a booking record
type BookingResponse struct {
	ID                  int64      `json:"id"`
	PropertyType        string     `json:"propertyType"`
	Frequency           string     `json:"frequency"`
	AdditionalServices  []string   `json:"additionalServices"`
	FullName            string     `json:"fullName"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Address             string     `json:"address"`
	City                string     `json:"city"`
	Postcode            string     `json:"postcode"`
	ContactMethod       string     `json:"contactMethod"`
	PreferredDate       *string    `json:"preferredDate,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	EstimatedPrice      float64    `json:"estimatedPrice"`
	RequiresManualQuote bool       `json:"requiresManualQuote"`
	Status              string     `json:"status"`
	BookingReference    string     `json:"bookingReference"`
	Source              string     `json:"source"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// BookingListResponse list wrapper
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ListBookingsRequest staff-side list filter
type ListBookingsRequest struct {
	Status    *string
	Postcode  *string
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
}

// UpdateStatusRequest staff-side status change
type UpdateStatusRequest struct {
	Status string
}

// FromDomainBooking converts a domain record to the staff view
func FromDomainBooking(record *domain.BookingRecord) *BookingResponse {
	services := make([]string, 0, len(record.AdditionalServices))
	for _, svc := range record.AdditionalServices {
		services = append(services, string(svc))
	}

	resp := &BookingResponse{
		ID:                  record.ID,
		PropertyType:        string(record.PropertyType),
		Frequency:           string(record.Frequency),
		AdditionalServices:  services,
		FullName:            record.FullName,
		Email:               record.Email,
		Phone:               record.Phone,
		Address:             record.Address,
		City:                record.City,
		Postcode:            record.Postcode,
		ContactMethod:       string(record.ContactMethod),
		Notes:               record.Notes,
		EstimatedPrice:      record.EstimatedPrice,
		RequiresManualQuote: record.RequiresManualQuote,
		Status:              string(record.Status),
		BookingReference:    record.BookingReference,
		Source:              record.Source,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}

	if record.PreferredDate != nil {
		date := record.PreferredDate.Format(domain.DateFormat)
		resp.PreferredDate = &date
	}

	return resp
}

// FromDomainBookingList converts a slice of domain records
func FromDomainBookingList(records []*domain.BookingRecord) *BookingListResponse {
	list := make([]*BookingResponse, 0, len(records))
	for _, record := range records {
		list = append(list, FromDomainBooking(record))
	}
	return &BookingListResponse{Bookings: list, Total: len(list)}
}

// ToDomainBookingStatus validates and converts a status string
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.ValidStatus(status) {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// ToDomainFilter converts the list request into a repository filter
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	filter.Postcode = r.Postcode

	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid start date %q", *r.StartDate)
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid end date %q", *r.EndDate)
		}
		// Make the period inclusive of the end day.
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}

	return filter, nil
}
