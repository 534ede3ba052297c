package submit_booking

import (
	"fmt"
	"math/rand"
	"time"
)

// referencePrefix brand prefix on every booking reference
const referencePrefix = "SWC"

// generateReference builds a human-readable booking reference:
// SWC + YYMMDD + 4 random digits, e.g. SWC2508284417.
//
// Uniqueness is best-effort at this layer; the bookings table carries a
// unique constraint that catches the negligible collision case.
func generateReference(now time.Time) string {
	return fmt.Sprintf("%s%s%04d", referencePrefix, now.Format("060102"), rand.Intn(10000))
}
