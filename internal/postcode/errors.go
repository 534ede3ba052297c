package postcode

import "errors"

var (
	// ErrInvalidPostcode is returned when the input does not parse as a full
	// UK postcode. Distinct from "not covered": the user should be asked to
	// enter a complete postcode, not turned away.
	ErrInvalidPostcode = errors.New("postcode: not a full UK postcode")
)
