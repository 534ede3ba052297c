package pricing

import "github.com/m04kA/SWC-BookingService/internal/domain"

// basePrices base window-cleaning price per property category, in GBP.
// Categories absent from this table require a manual quote.
var basePrices = map[domain.PropertyType]float64{
	domain.PropertySemi2:     20,
	domain.PropertySemi3:     25,
	domain.PropertySemi4:     30,
	domain.PropertySemi5:     35,
	domain.PropertyDetached2: 25,
	domain.PropertyDetached3: 30,
	domain.PropertyDetached4: 35,
	domain.PropertyDetached5: 40,
}

// frequencyAdjustments additive adjustment per clean frequency, in GBP.
// Less frequent service costs more per visit; the adjustment never goes negative.
var frequencyAdjustments = map[domain.Frequency]float64{
	domain.FrequencyFourWeekly:   0,
	domain.FrequencyEightWeekly:  3,
	domain.FrequencyTwelveWeekly: 5,
	domain.FrequencyOneTime:      20,
}

// addonPrices flat price per selected add-on service, in GBP
var addonPrices = map[domain.AdditionalService]float64{
	domain.ServiceGutterInternal: 80,
	domain.ServiceGutterExternal: 40,
	domain.ServiceSolar:          40,
	domain.ServiceConservatory:   40,
}
