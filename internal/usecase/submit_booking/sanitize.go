package submit_booking

import (
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/sanitize"
)

// sanitizeRequest converts the raw submission into a cleaned domain request.
// Unparseable optional values degrade to absent; required-field problems are
// left for the validator so every failure is reported together.
func sanitizeRequest(req *Request) (*domain.BookingRequest, map[string]string) {
	fieldErrs := make(map[string]string)

	clean := &domain.BookingRequest{
		PropertyType:  domain.PropertyType(sanitize.Text(req.PropertyType)),
		Frequency:     domain.Frequency(sanitize.Text(req.Frequency)),
		FullName:      sanitize.Text(req.FullName),
		Email:         sanitize.Email(req.Email),
		Phone:         sanitize.Phone(req.Phone),
		Address:       sanitize.Text(req.Address),
		City:          sanitize.Text(req.City),
		Postcode:      sanitize.Postcode(req.Postcode),
		ContactMethod: domain.ContactMethod(sanitize.Text(req.ContactMethod)),
		TermsAgreed:   req.TermsAgreed,
	}

	for _, svc := range req.AdditionalServices {
		service := domain.AdditionalService(sanitize.Text(svc))
		if service == "" || clean.HasService(service) {
			continue
		}
		clean.AdditionalServices = append(clean.AdditionalServices, service)
	}

	if notes := sanitize.Message(req.Notes); notes != "" {
		clean.Notes = &notes
	}

	if req.PreferredDate != "" {
		date, err := time.Parse(domain.DateFormat, sanitize.Text(req.PreferredDate))
		if err != nil {
			fieldErrs["preferredDate"] = "preferred date must be a valid date (YYYY-MM-DD)"
		} else {
			clean.PreferredDate = &date
		}
	}

	return clean, fieldErrs
}
