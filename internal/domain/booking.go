package domain

import "time"

// BookingStatus represents the lifecycle status of a captured lead
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusContacted BookingStatus = "contacted"
	StatusQuoted    BookingStatus = "quoted"
	StatusReady     BookingStatus = "ready"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PropertyType drives the base price lookup.
// The custom, commercial and general categories have no automatic price.
type PropertyType string

const (
	PropertySemi2      PropertyType = "semi-2"
	PropertySemi3      PropertyType = "semi-3"
	PropertySemi4      PropertyType = "semi-4"
	PropertySemi5      PropertyType = "semi-5"
	PropertyDetached2  PropertyType = "detached-2"
	PropertyDetached3  PropertyType = "detached-3"
	PropertyDetached4  PropertyType = "detached-4"
	PropertyDetached5  PropertyType = "detached-5"
	PropertyCustom     PropertyType = "custom"
	PropertyCommercial PropertyType = "commercial"
	PropertyGeneral    PropertyType = "general"
)

// Frequency of the regular clean
type Frequency string

const (
	FrequencyFourWeekly   Frequency = "4weekly"
	FrequencyEightWeekly  Frequency = "8weekly"
	FrequencyTwelveWeekly Frequency = "12weekly"
	FrequencyOneTime      Frequency = "onetime"
)

// AdditionalService add-on services selectable alongside window cleaning
type AdditionalService string

const (
	ServiceGutterInternal AdditionalService = "gutterInternal"
	ServiceGutterExternal AdditionalService = "gutterExternal"
	ServiceSolar          AdditionalService = "solar"
	ServiceConservatory   AdditionalService = "conservatory"
)

// ContactMethod the customer's preferred way of being contacted
type ContactMethod string

const (
	ContactByEmail ContactMethod = "email"
	ContactByPhone ContactMethod = "phone"
	ContactByText  ContactMethod = "text"
)

// BookingRequest is a booking submission as received from the form.
// Contact fields are raw user input until they pass through the sanitizer.
type BookingRequest struct {
	PropertyType       PropertyType
	Frequency          Frequency
	AdditionalServices []AdditionalService

	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Postcode      string
	ContactMethod ContactMethod
	PreferredDate *time.Time
	Notes         *string
	TermsAgreed   bool
}

// HasService reports whether the given add-on is selected
func (r *BookingRequest) HasService(s AdditionalService) bool {
	for _, svc := range r.AdditionalServices {
		if svc == s {
			return true
		}
	}
	return false
}

// ContactRequest is a plain contact-form submission
type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// BookingRecord is the persisted form of an accepted booking request
type BookingRecord struct {
	ID int64

	PropertyType       PropertyType
	Frequency          Frequency
	AdditionalServices []AdditionalService

	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	Postcode      string
	ContactMethod ContactMethod
	PreferredDate *time.Time
	Notes         *string

	EstimatedPrice      float64
	RequiresManualQuote bool
	Status              BookingStatus
	BookingReference    string
	Source              string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the booking still needs staff attention
func (b *BookingRecord) IsOpen() bool {
	return b.Status != StatusCompleted && b.Status != StatusCancelled
}

// CanTransitionTo reports whether the status change is allowed.
// Completed and cancelled are terminal; bookings are never deleted,
// cancellation is itself a status.
func (b *BookingRecord) CanTransitionTo(next BookingStatus) bool {
	if !ValidStatus(next) {
		return false
	}
	if b.Status == StatusCompleted || b.Status == StatusCancelled {
		return false
	}
	return next != b.Status
}

// ValidStatus reports whether s is one of the known booking statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusContacted, StatusQuoted, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPropertyType reports whether p is one of the known property types
func ValidPropertyType(p PropertyType) bool {
	switch p {
	case PropertySemi2, PropertySemi3, PropertySemi4, PropertySemi5,
		PropertyDetached2, PropertyDetached3, PropertyDetached4, PropertyDetached5,
		PropertyCustom, PropertyCommercial, PropertyGeneral:
		return true
	}
	return false
}

// ValidFrequency reports whether f is one of the known frequencies
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyFourWeekly, FrequencyEightWeekly, FrequencyTwelveWeekly, FrequencyOneTime:
		return true
	}
	return false
}

// ValidAdditionalService reports whether s is one of the known add-ons
func ValidAdditionalService(s AdditionalService) bool {
	switch s {
	case ServiceGutterInternal, ServiceGutterExternal, ServiceSolar, ServiceConservatory:
		return true
	}
	return false
}

// ValidContactMethod reports whether m is one of the known contact methods
func ValidContactMethod(m ContactMethod) bool {
	switch m {
	case ContactByEmail, ContactByPhone, ContactByText:
		return true
	}
	return false
}

// BookingsFilter filter for listing persisted bookings
type BookingsFilter struct {
	Status    *BookingStatus // optional status filter
	Postcode  *string        // optional normalized postcode filter
	StartDate *time.Time     // created-at period start (optional)
	EndDate   *time.Time     // created-at period end (optional)
}
