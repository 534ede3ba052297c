package postcode

import (
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// maxScheduleScanWeeks upper bound on the forward scan, ~10 years.
// Any round produces at least one matching date per month, so the guard
// only trips on corrupt round data.
const maxScheduleScanWeeks = 520

// NextVisitDates generates the next n dates on which the round visits,
// strictly after "now" measured at local midnight.
//
// A date qualifies when it falls on the round's weekday and in the round's
// week-of-month, where week-of-month is ceil(day/7). Rotation week 4 also
// absorbs a month's 5th partial week, so a week-4 round still gets exactly
// one visit in long months.
func NextVisitDates(round domain.Round, now time.Time, n int) []time.Time {
	if n <= 0 {
		n = domain.DefaultVisitDates
	}

	// Start from tomorrow at midnight: today's round has already left.
	candidate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)

	for candidate.Weekday() != round.Day {
		candidate = candidate.AddDate(0, 0, 1)
	}

	dates := make([]time.Time, 0, n)
	for weeks := 0; len(dates) < n && weeks < maxScheduleScanWeeks; weeks++ {
		if weekOfMonthMatches(candidate, round.Week) {
			dates = append(dates, candidate)
		}
		candidate = candidate.AddDate(0, 0, 7)
	}

	return dates
}

// weekOfMonthMatches reports whether the date falls in the rotation week
func weekOfMonthMatches(date time.Time, rotationWeek int) bool {
	weekOfMonth := (date.Day() + 6) / 7
	if rotationWeek == domain.RotationWeeks {
		return weekOfMonth >= domain.RotationWeeks
	}
	return weekOfMonth == rotationWeek
}
