// Package postcode maps raw postcode input to a service-area verdict and,
// for covered postcodes, the round's collection day and rotation week.
package postcode

import (
	"regexp"
	"strings"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// ukPostcodeRe full UK postcode grammar, applied after whitespace stripping
// and uppercasing
var ukPostcodeRe = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?[0-9][A-Z]{2}$`)

// Classifier resolves postcodes against a round table
type Classifier struct {
	rounds map[string]domain.Round
}

// NewClassifier creates a classifier over the given round table.
// A nil table falls back to DefaultRounds.
func NewClassifier(rounds map[string]domain.Round) *Classifier {
	if rounds == nil {
		rounds = DefaultRounds
	}
	return &Classifier{rounds: rounds}
}

// Classify normalizes the raw postcode and resolves its coverage.
//
// Input that fails the UK postcode grammar returns ErrInvalidPostcode.
// A valid postcode whose outward code is on a round is covered; anything
// else is "maybe" rather than a hard rejection - the business always wants
// the lead captured for manual follow-up.
func (c *Classifier) Classify(raw string) (domain.ServiceAreaMatch, error) {
	compact := strings.ToUpper(strings.Join(strings.Fields(raw), ""))

	if !ukPostcodeRe.MatchString(compact) {
		return domain.ServiceAreaMatch{}, ErrInvalidPostcode
	}

	// Inward code is always the last three characters; the outward code
	// (area + district, e.g. BA16) is everything before it.
	outward := compact[:len(compact)-3]
	normalized := outward + " " + compact[len(compact)-3:]

	match := domain.ServiceAreaMatch{
		Normalized:     normalized,
		PostcodePrefix: outward,
	}

	if round, ok := c.rounds[outward]; ok {
		match.Covered = true
		match.CollectionDay = round.Day
		match.RotationWeek = round.Week
		return match, nil
	}

	match.Maybe = true
	return match, nil
}

// Round returns the round assigned to an outward code, if any
func (c *Classifier) Round(outward string) (domain.Round, bool) {
	round, ok := c.rounds[outward]
	return round, ok
}
