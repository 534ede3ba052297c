package domain

import "time"

// ServiceAreaMatch is the coverage verdict for a postcode
type ServiceAreaMatch struct {
	Normalized     string
	PostcodePrefix string

	// Covered means the outward code is on a scheduled round.
	// Maybe means the lead should be captured and followed up manually.
	Covered bool
	Maybe   bool

	CollectionDay time.Weekday // valid only when Covered
	RotationWeek  int          // 1..4, valid only when Covered
}

// Round is one scheduled visit slot in the 4-week rotation,
// keyed by outward code (e.g. "BA16")
type Round struct {
	Day  time.Weekday
	Week int // week-in-rotation, 1..4
}
