// Package pricing computes quotes for booking requests.
//
// The same computation runs in the form wizard for live previews and in the
// submission orchestrator for the authoritative price; both must agree, so
// everything here is a pure function of its inputs.
package pricing

import "github.com/m04kA/SWC-BookingService/internal/domain"

// Price computes a quote for the given selection.
//
// Categories without a base price (custom, commercial, general) produce a
// zero-valued quote flagged RequiresManualQuote so the UI renders
// "Quote Required" instead of a misleading £0.
//
// Selecting both gutter services triggers the free-window-cleaning bundle:
// the window component (base price + frequency adjustment) is waived while
// the add-on charges remain.
func Price(propertyType domain.PropertyType, frequency domain.Frequency, services []domain.AdditionalService) domain.Quote {
	base, ok := basePrices[propertyType]
	if !ok {
		// Manual-quote category. Add-on selections are still recorded on
		// the request but not priced; the whole job is quoted by hand.
		return domain.Quote{RequiresManualQuote: true}
	}

	adjustment := frequencyAdjustments[frequency]

	addonTotal := 0.0
	hasGutterInternal := false
	hasGutterExternal := false
	seen := make(map[domain.AdditionalService]bool, len(services))

	for _, svc := range services {
		if seen[svc] {
			continue // services form a set, duplicates are ignored
		}
		seen[svc] = true

		addonTotal += addonPrices[svc]

		switch svc {
		case domain.ServiceGutterInternal:
			hasGutterInternal = true
		case domain.ServiceGutterExternal:
			hasGutterExternal = true
		}
	}

	quote := domain.Quote{
		BasePrice:  base,
		Adjustment: adjustment,
		AddonTotal: addonTotal,
		Total:      base + adjustment + addonTotal,
	}

	// Bundle waiver: both gutter services together earn a free window clean.
	if hasGutterInternal && hasGutterExternal {
		quote.FreeWindowCleaning = true
		quote.Total = addonTotal
	}

	return quote
}

// BasePrice returns the base window-cleaning price for a property category.
// The second result is false for manual-quote categories.
func BasePrice(propertyType domain.PropertyType) (float64, bool) {
	p, ok := basePrices[propertyType]
	return p, ok
}

// AddonPrice returns the flat price of an add-on service
func AddonPrice(s domain.AdditionalService) float64 {
	return addonPrices[s]
}
