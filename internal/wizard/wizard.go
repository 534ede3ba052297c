// Package wizard drives the 4-step booking form as a plain state machine:
// property, add-ons, contact details, review. Step gates reuse the same
// sanitizer, validator and pricing rules the submission pipeline applies
// server-side, so the preview the user sees is the price they get.
package wizard

import (
	"errors"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/postcode"
	"github.com/m04kA/SWC-BookingService/internal/pricing"
	"github.com/m04kA/SWC-BookingService/internal/sanitize"
	"github.com/m04kA/SWC-BookingService/internal/validate"
)

// ErrSubmitInFlight is returned while a submission is already running.
// Double-submit is prevented here, not by the caller.
var ErrSubmitInFlight = errors.New("wizard: submission already in flight")

// Step is the wizard position, linear from property to review
type Step int

const (
	StepProperty Step = iota + 1
	StepAddons
	StepContact
	StepReview
)

// Draft holds the raw form values. It is re-synced into the wizard on
// every transition so the model never lags behind the inputs.
type Draft struct {
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
}

// stepFields maps each step to the validation keys its gate checks
var stepFields = map[Step][]string{
	StepProperty: {"propertyType", "frequency"},
	StepAddons:   {"additionalServices"},
	StepContact: {"fullName", "contact", "email", "phone", "address", "city",
		"postcode", "contactMethod", "notes"},
}

// Wizard is the form state machine
type Wizard struct {
	step       Step
	draft      Draft
	submitting bool
	classifier *postcode.Classifier
}

// New creates a wizard at the first step. classifier may be nil if no
// availability preview is wanted.
func New(classifier *postcode.Classifier) *Wizard {
	return &Wizard{
		step:       StepProperty,
		classifier: classifier,
	}
}

// Step returns the current position
func (w *Wizard) Step() Step {
	return w.step
}

// Draft returns the current form values
func (w *Wizard) Draft() Draft {
	return w.draft
}

// Sync replaces the in-memory model with the latest input values
func (w *Wizard) Sync(draft Draft) {
	w.draft = draft
}

// Next re-syncs the draft, validates the current step's gate and advances
// on success. The returned map holds the gate failures, empty on advance.
func (w *Wizard) Next(draft Draft) (Step, map[string]string) {
	w.Sync(draft)

	errs := w.validateStep(w.step)
	if len(errs) > 0 {
		return w.step, errs
	}

	if w.step < StepReview {
		w.step++
	}
	return w.step, nil
}

// Back moves to an earlier step. Forward jumps and moves during an
// in-flight submission are ignored.
func (w *Wizard) Back(to Step) Step {
	if w.submitting {
		return w.step
	}
	if to >= StepProperty && to < w.step {
		w.step = to
	}
	return w.step
}

// Preview computes the live quote and, when a classifier is wired, the
// coverage verdict for the current postcode. The review summary uses this
// same call, so the two can never disagree.
func (w *Wizard) Preview() (domain.Quote, *domain.ServiceAreaMatch) {
	req, _ := w.toRequest()
	quote := pricing.Price(req.PropertyType, req.Frequency, req.AdditionalServices)

	var match *domain.ServiceAreaMatch
	if w.classifier != nil && req.Postcode != "" {
		if m, err := w.classifier.Classify(req.Postcode); err == nil {
			match = &m
		}
	}

	return quote, match
}

// BeginSubmit validates the whole form and locks the wizard for the
// duration of the submission. On validation failure the map holds every
// field error and the wizard stays unlocked at the review step.
func (w *Wizard) BeginSubmit() (*domain.BookingRequest, map[string]string, error) {
	if w.submitting {
		return nil, nil, ErrSubmitInFlight
	}

	req, extraErrs := w.toRequest()
	results := validate.ValidateBooking(req)
	errs := results.Errors()
	for field, msg := range extraErrs {
		errs[field] = msg
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	w.submitting = true
	return req, nil, nil
}

// FinishSubmit unlocks the wizard. A successful submission resets every
// step to its initial state; a failed one keeps the data so the user can
// correct and retry.
func (w *Wizard) FinishSubmit(success bool) {
	w.submitting = false
	if success {
		w.draft = Draft{}
		w.step = StepProperty
	}
}

// validateStep runs the full rule set and keeps only the current gate's
// fields, so client gates and the server stay rule-for-rule identical
func (w *Wizard) validateStep(step Step) map[string]string {
	fields, ok := stepFields[step]
	if !ok {
		return nil
	}

	req, extraErrs := w.toRequest()
	all := validate.ValidateBooking(req).Errors()
	for field, msg := range extraErrs {
		all[field] = msg
	}

	errs := make(map[string]string)
	for _, field := range fields {
		if msg, found := all[field]; found {
			errs[field] = msg
		}
	}
	return errs
}

// toRequest sanitizes the draft into a domain request. Field problems the
// validator cannot see (a malformed optional date) come back in the map.
func (w *Wizard) toRequest() (*domain.BookingRequest, map[string]string) {
	extraErrs := make(map[string]string)

	services := make([]domain.AdditionalService, 0, len(w.draft.AdditionalServices))
	seen := make(map[domain.AdditionalService]bool)
	for _, name := range w.draft.AdditionalServices {
		svc := domain.AdditionalService(name)
		if !seen[svc] {
			seen[svc] = true
			services = append(services, svc)
		}
	}

	req := &domain.BookingRequest{
		PropertyType:       domain.PropertyType(w.draft.PropertyType),
		Frequency:          domain.Frequency(w.draft.Frequency),
		AdditionalServices: services,
		FullName:           sanitize.Text(w.draft.FullName),
		Email:              sanitize.Email(w.draft.Email),
		Phone:              sanitize.Phone(w.draft.Phone),
		Address:            sanitize.Text(w.draft.Address),
		City:               sanitize.Text(w.draft.City),
		Postcode:           sanitize.Postcode(w.draft.Postcode),
		ContactMethod:      domain.ContactMethod(w.draft.ContactMethod),
		TermsAgreed:        w.draft.TermsAgreed,
	}

	if notes := sanitize.Text(w.draft.Notes); notes != "" {
		req.Notes = &notes
	}

	if w.draft.PreferredDate != "" {
		date, err := time.Parse(domain.DateFormat, w.draft.PreferredDate)
		if err != nil {
			extraErrs["preferredDate"] = "preferred date must be in YYYY-MM-DD format"
		} else {
			req.PreferredDate = &date
		}
	}

	return req, extraErrs
}
