package get_service_area

import (
	"time"

	"github.com/m04kA/SWC-BookingService/internal/domain"
)

// ServiceAreaResponse HTTP response model
type ServiceAreaResponse struct {
	Postcode       string   `json:"postcode"`
	OutwardCode    string   `json:"outwardCode"`
	Covered        bool     `json:"covered"`
	Maybe          bool     `json:"maybe"`
	CollectionDay  string   `json:"collectionDay,omitempty"`
	RotationWeek   int      `json:"rotationWeek,omitempty"`
	NextVisitDates []string `json:"nextVisitDates,omitempty"`
}

// FromDomainMatch builds the HTTP response from a coverage verdict
func FromDomainMatch(match domain.ServiceAreaMatch, visits []time.Time) *ServiceAreaResponse {
	resp := &ServiceAreaResponse{
		Postcode:    match.Normalized,
		OutwardCode: match.PostcodePrefix,
		Covered:     match.Covered,
		Maybe:       match.Maybe,
	}

	if match.Covered {
		resp.CollectionDay = match.CollectionDay.String()
		resp.RotationWeek = match.RotationWeek
		resp.NextVisitDates = make([]string, 0, len(visits))
		for _, visit := range visits {
			resp.NextVisitDates = append(resp.NextVisitDates, visit.Format(domain.DateFormat))
		}
	}

	return resp
}
