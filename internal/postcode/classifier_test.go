package postcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

func TestClassify_CoveredPostcode(t *testing.T) {
	c := NewClassifier(nil)

	match, err := c.Classify("BA16 0HW")
	require.NoError(t, err)

	assert.Equal(t, "BA16 0HW", match.Normalized)
	assert.Equal(t, "BA16", match.PostcodePrefix)
	assert.True(t, match.Covered)
	assert.False(t, match.Maybe)
	assert.Equal(t, time.Tuesday, match.CollectionDay)
	assert.Equal(t, 3, match.RotationWeek)
}

func TestClassify_NormalizationIsIdempotent(t *testing.T) {
	c := NewClassifier(nil)

	reference, err := c.Classify("BA6 8AB")
	require.NoError(t, err)
	require.True(t, reference.Covered)

	for _, raw := range []string{"ba6 8ab", "BA6  8AB", "BA68AB", "  ba6\t8ab "} {
		match, err := c.Classify(raw)
		require.NoError(t, err, "input=%q", raw)
		assert.Equal(t, reference, match, "input=%q", raw)
	}
}

func TestClassify_UncoveredDistrictIsMaybe(t *testing.T) {
	c := NewClassifier(nil)

	// DT9 is the only covered DT district; the rest of DT is follow-up.
	match, err := c.Classify("DT1 1AA")
	require.NoError(t, err)
	assert.False(t, match.Covered)
	assert.True(t, match.Maybe)

	sherborne, err := c.Classify("DT9 3AB")
	require.NoError(t, err)
	assert.True(t, sherborne.Covered)
	assert.Equal(t, time.Friday, sherborne.CollectionDay)
}

func TestClassify_UnknownAreaIsMaybe(t *testing.T) {
	c := NewClassifier(nil)

	match, err := c.Classify("SW1A 1AA")
	require.NoError(t, err)
	assert.False(t, match.Covered)
	assert.True(t, match.Maybe)
	assert.Equal(t, "SW1A 1AA", match.Normalized)
}

func TestClassify_InvalidInput(t *testing.T) {
	c := NewClassifier(nil)

	for _, raw := range []string{"", "BA16", "NOTAPOSTCODE", "123 456", "B!6 8AB"} {
		_, err := c.Classify(raw)
		assert.ErrorIs(t, err, ErrInvalidPostcode, "input=%q", raw)
	}
}

func TestClassify_CustomRoundTable(t *testing.T) {
	c := NewClassifier(map[string]domain.Round{
		"ZZ1": {Day: time.Monday, Week: 1},
	})

	match, err := c.Classify("ZZ1 1AA")
	require.NoError(t, err)
	assert.True(t, match.Covered)

	// Defaults do not leak into a custom table.
	match, err = c.Classify("BA16 0HW")
	require.NoError(t, err)
	assert.False(t, match.Covered)
	assert.True(t, match.Maybe)
}

func TestNextVisitDates_WeekdayAndRotationWeek(t *testing.T) {
	// Wednesday 2025-01-15, mid rotation.
	now := time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)
	round := domain.Round{Day: time.Tuesday, Week: 3}

	dates := NextVisitDates(round, now, 8)
	require.Len(t, dates, 8)

	for _, d := range dates {
		assert.Equal(t, time.Tuesday, d.Weekday())
		assert.Equal(t, 3, (d.Day()+6)/7, "date=%s", d.Format(domain.DateFormat))
		assert.True(t, d.After(now.Truncate(24*time.Hour)), "date=%s", d.Format(domain.DateFormat))
	}

	// First upcoming week-3 Tuesday after 2025-01-15 is 2025-01-21.
	assert.Equal(t, "2025-01-21", dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2025-02-18", dates[1].Format(domain.DateFormat))
}

func TestNextVisitDates_StrictlyFuture(t *testing.T) {
	// Now is a week-1 Wednesday that is itself a visit day; it must be skipped.
	now := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	round := domain.Round{Day: time.Wednesday, Week: 1}

	dates := NextVisitDates(round, now, 3)
	require.NotEmpty(t, dates)
	assert.Equal(t, "2025-02-05", dates[0].Format(domain.DateFormat))
}

func TestNextVisitDates_Week4AbsorbsFifthWeek(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	round := domain.Round{Day: time.Friday, Week: 4}

	dates := NextVisitDates(round, now, 6)
	require.Len(t, dates, 6)

	// January 2025 has Fridays on 3, 10, 17, 24 and 31; both the 24th
	// (week 4) and the 31st (week 5) belong to the week-4 round.
	assert.Equal(t, "2025-01-24", dates[0].Format(domain.DateFormat))
	assert.Equal(t, "2025-01-31", dates[1].Format(domain.DateFormat))
	assert.Equal(t, "2025-02-28", dates[2].Format(domain.DateFormat))

	for _, d := range dates {
		assert.GreaterOrEqual(t, (d.Day()+6)/7, 4, "date=%s", d.Format(domain.DateFormat))
	}
}

func TestNextVisitDates_DefaultCount(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dates := NextVisitDates(domain.Round{Day: time.Monday, Week: 2}, now, 0)
	assert.Len(t, dates, domain.DefaultVisitDates)
}
