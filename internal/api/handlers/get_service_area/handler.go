package get_service_area

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/postcode"
)

const msgInvalidPostcode = "that doesn't look like a valid UK postcode"

type Handler struct {
	classifier Classifier
	time       TimeProvider
	logger     Logger
}

func NewHandler(classifier Classifier, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		classifier: classifier,
		time:       timeProvider,
		logger:     logger,
	}
}

// Handle GET /api/v1/service-area/{postcode}
// Coverage verdict plus the next scheduled visit dates for covered rounds.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["postcode"]

	match, err := h.classifier.Classify(raw)
	if err != nil {
		if errors.Is(err, postcode.ErrInvalidPostcode) {
			h.logger.Warn("GET /service-area - Invalid postcode: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPostcode)
			return
		}
		h.logger.Error("GET /service-area - Failed to classify postcode %q: %v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	var visits []time.Time
	if match.Covered {
		round := domain.Round{Day: match.CollectionDay, Week: match.RotationWeek}
		visits = postcode.NextVisitDates(round, h.time.Now(), domain.DefaultVisitDates)
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainMatch(match, visits))
}
