package domain

// Field length limits enforced by the sanitizer and validator
const (
	MinNameLength     = 2
	MaxNameLength     = 50
	MaxTextLength     = 500
	MaxMessageLength  = 1000
	MaxPostcodeLength = 8
	MinPhoneDigits    = 7
	MaxPhoneDigits    = 15
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultVisitDates how many upcoming visit dates the schedule lookup returns
const DefaultVisitDates = 8

// RotationWeeks length of the round rotation cycle in weeks
const RotationWeeks = 4

// SourceWebsite default source tag for bookings captured by the public site
const SourceWebsite = "website"
