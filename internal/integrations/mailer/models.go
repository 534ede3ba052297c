package mailer

// bookingPayload notification body for a new booking lead
type bookingPayload struct {
	Kind             string   `json:"kind"`
	BookingReference string   `json:"bookingReference"`
	FullName         string   `json:"fullName"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	Postcode         string   `json:"postcode"`
	PropertyType     string   `json:"propertyType"`
	Frequency        string   `json:"frequency"`
	Services         []string `json:"services,omitempty"`
	EstimatedPrice   string   `json:"estimatedPrice"`
	ContactMethod    string   `json:"contactMethod"`
	PreferredDate    string   `json:"preferredDate,omitempty"`
	Notes            string   `json:"notes,omitempty"`
}

// contactPayload notification body for a contact-form message
type contactPayload struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// providerResponse error body returned by the notification provider
type providerResponse struct {
	Message string `json:"message"`
}
