// Package validate enforces field format rules on sanitized input.
//
// The same rules run client-side (step-gated, in the wizard) and server-side
// (full object, in the orchestrators); the server re-validates regardless of
// what the client claims.
package validate

import (
	"fmt"
	"regexp"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// Result outcome of a single field rule
type Result struct {
	IsValid bool
	Error   string
}

// Results per-field validation outcome, keyed by field name
type Results map[string]Result

// Valid reports whether every checked field passed
func (r Results) Valid() bool {
	for _, res := range r {
		if !res.IsValid {
			return false
		}
	}
	return true
}

// Errors returns the failed fields and their messages.
// All failures are reported at once so the user can fix everything in one pass.
func (r Results) Errors() map[string]string {
	errs := make(map[string]string)
	for field, res := range r {
		if !res.IsValid {
			errs[field] = res.Error
		}
	}
	return errs
}

var (
	nameRe       = regexp.MustCompile(`^[A-Za-z' -]+$`)
	emailRe      = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	ukPhoneRe    = regexp.MustCompile(`^(\+44\s?|0)[0-9 ]{8,13}$`)
	ukPostcodeRe = regexp.MustCompile(`(?i)^[A-Z]{1,2}[0-9][A-Z0-9]?\s?[0-9][A-Z]{2}$`)
)

func ok() Result {
	return Result{IsValid: true}
}

func fail(msg string) Result {
	return Result{Error: msg}
}

// Name validates a person's name: 2-50 characters, letters, apostrophes
// and hyphens only
func Name(v string) Result {
	if v == "" {
		return fail("name is required")
	}
	if len(v) < domain.MinNameLength || len(v) > domain.MaxNameLength {
		return fail(fmt.Sprintf("name must be between %d and %d characters", domain.MinNameLength, domain.MaxNameLength))
	}
	if !nameRe.MatchString(v) {
		return fail("name may only contain letters, apostrophes and hyphens")
	}
	return ok()
}

// Email validates an already-sanitized (lowercased) email address
func Email(v string) Result {
	if !emailRe.MatchString(v) {
		return fail("please enter a valid email address")
	}
	return ok()
}

// Phone validates a UK phone number
func Phone(v string) Result {
	if !ukPhoneRe.MatchString(v) {
		return fail("please enter a valid UK phone number")
	}
	return ok()
}

// Postcode validates a full UK postcode
func Postcode(v string) Result {
	if v == "" {
		return fail("postcode is required")
	}
	if !ukPostcodeRe.MatchString(v) {
		return fail("please enter a full UK postcode")
	}
	return ok()
}

// Required validates that a free-text field is non-empty
func Required(v, label string) Result {
	if v == "" {
		return fail(label + " is required")
	}
	return ok()
}

// MessageBody validates a contact message: required, sensible length bounds
func MessageBody(v string) Result {
	if v == "" {
		return fail("message is required")
	}
	if len(v) < 10 {
		return fail("message must be at least 10 characters")
	}
	if len(v) > domain.MaxMessageLength {
		return fail(fmt.Sprintf("message must be at most %d characters", domain.MaxMessageLength))
	}
	return ok()
}

// ValidateBooking runs every server-side rule over a sanitized booking
// request. Cross-field logic is limited to "at least one contact method".
func ValidateBooking(req *domain.BookingRequest) Results {
	results := Results{}

	if !domain.ValidPropertyType(req.PropertyType) {
		results["propertyType"] = fail("please choose a property type")
	} else {
		results["propertyType"] = ok()
	}

	if !domain.ValidFrequency(req.Frequency) {
		results["frequency"] = fail("please choose a cleaning frequency")
	} else {
		results["frequency"] = ok()
	}

	for _, svc := range req.AdditionalServices {
		if !domain.ValidAdditionalService(svc) {
			results["additionalServices"] = fail("unknown additional service selected")
			break
		}
	}

	results["fullName"] = Name(req.FullName)

	// At least one of email/phone must be present; each present value must
	// still pass its own format rule.
	switch {
	case req.Email == "" && req.Phone == "":
		results["contact"] = fail("at least one contact method (email or phone) is required")
	default:
		if req.Email != "" {
			results["email"] = Email(req.Email)
		}
		if req.Phone != "" {
			results["phone"] = Phone(req.Phone)
		}
	}

	results["address"] = Required(req.Address, "address")
	results["city"] = Required(req.City, "town or city")
	results["postcode"] = Postcode(req.Postcode)

	if !domain.ValidContactMethod(req.ContactMethod) {
		results["contactMethod"] = fail("please choose a preferred contact method")
	} else {
		results["contactMethod"] = ok()
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxMessageLength {
		results["notes"] = fail(fmt.Sprintf("notes must be at most %d characters", domain.MaxMessageLength))
	}

	if !req.TermsAgreed {
		results["termsAgreed"] = fail("you must agree to the terms to book")
	} else {
		results["termsAgreed"] = ok()
	}

	return results
}

// ValidateContact runs the rules for the plain contact form
func ValidateContact(req *domain.ContactRequest) Results {
	results := Results{}

	results["name"] = Name(req.Name)
	results["message"] = MessageBody(req.Message)

	switch {
	case req.Email == "" && req.Phone == "":
		results["contact"] = fail("at least one contact method (email or phone) is required")
	default:
		if req.Email != "" {
			results["email"] = Email(req.Email)
		}
		if req.Phone != "" {
			results["phone"] = Phone(req.Phone)
		}
	}

	return results
}
