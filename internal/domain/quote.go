package domain

import "fmt"

// Quote is a computed price for a booking request.
// The server-side computation is authoritative; any client-supplied price
// is discarded and recomputed.
type Quote struct {
	BasePrice  float64
	Adjustment float64
	AddonTotal float64
	Total      float64

	// RequiresManualQuote is set for property categories without an
	// automatic price. Total is zero and must never be displayed as one.
	RequiresManualQuote bool

	// FreeWindowCleaning is set when the gutter bundle waives the
	// window-cleaning component of the total.
	FreeWindowCleaning bool
}

// Display returns the customer-facing price string
func (q Quote) Display() string {
	if q.RequiresManualQuote {
		return "Quote Required"
	}
	return fmt.Sprintf("£%.2f", q.Total)
}
