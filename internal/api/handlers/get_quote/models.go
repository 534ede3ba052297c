package get_quote

import "github.com/m04kA/SWC-BookingService/internal/domain"

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PropertyType        string   `json:"propertyType"`
	Frequency           string   `json:"frequency"`
	AdditionalServices  []string `json:"additionalServices"`
	BasePrice           float64  `json:"basePrice"`
	Adjustment          float64  `json:"adjustment"`
	AddonTotal          float64  `json:"addonTotal"`
	Total               float64  `json:"total"`
	RequiresManualQuote bool     `json:"requiresManualQuote"`
	FreeWindowCleaning  bool     `json:"freeWindowCleaning"`
	Display             string   `json:"display"`
}

// FromDomainQuote builds the HTTP response from a computed quote
func FromDomainQuote(propertyType domain.PropertyType, frequency domain.Frequency,
	services []domain.AdditionalService, quote domain.Quote) *QuoteResponse {

	serviceNames := make([]string, 0, len(services))
	for _, svc := range services {
		serviceNames = append(serviceNames, string(svc))
	}

	return &QuoteResponse{
		PropertyType:        string(propertyType),
		Frequency:           string(frequency),
		AdditionalServices:  serviceNames,
		BasePrice:           quote.BasePrice,
		Adjustment:          quote.Adjustment,
		AddonTotal:          quote.AddonTotal,
		Total:               quote.Total,
		RequiresManualQuote: quote.RequiresManualQuote,
		FreeWindowCleaning:  quote.FreeWindowCleaning,
		Display:             quote.Display(),
	}
}
