package postcode

import (
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// DefaultRounds is the operator's current 4-week rotation, keyed by outward
// code. This is business data, not logic: deployments override it from
// configuration without touching the classifier.
//
// DT9 (Sherborne) is the only DT district on a round; the rest of DT is
// follow-up territory.
var DefaultRounds = map[string]domain.Round{
	"BA3":  {Day: time.Monday, Week: 4},
	"BA4":  {Day: time.Friday, Week: 2},
	"BA5":  {Day: time.Thursday, Week: 1},
	"BA6":  {Day: time.Wednesday, Week: 1},
	"BA16": {Day: time.Tuesday, Week: 3},
	"TA6":  {Day: time.Tuesday, Week: 1},
	"TA7":  {Day: time.Monday, Week: 2},
	"TA9":  {Day: time.Wednesday, Week: 2},
	"TA10": {Day: time.Thursday, Week: 2},
	"TA11": {Day: time.Friday, Week: 1},
	"TA12": {Day: time.Monday, Week: 3},
	"BS26": {Day: time.Wednesday, Week: 4},
	"BS27": {Day: time.Thursday, Week: 4},
	"BS28": {Day: time.Friday, Week: 4},
	"DT9":  {Day: time.Friday, Week: 3},
}
