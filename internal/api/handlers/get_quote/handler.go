package get_quote

import (
	"net/http"
	"strings"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
	"github.com/m04kA/SWC-BookingService/internal/domain"
	"github.com/m04kA/SWC-BookingService/internal/pricing"
)

const (
	msgInvalidPropertyType = "unknown property type"
	msgInvalidFrequency    = "unknown cleaning frequency"
	msgInvalidService      = "unknown additional service"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/quote?propertyType=semi-3&frequency=4weekly&services=solar,conservatory
// Pure price preview for the form wizard, nothing is stored.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	propertyType := domain.PropertyType(query.Get("propertyType"))
	if !domain.ValidPropertyType(propertyType) {
		h.logger.Warn("GET /quote - Unknown property type: %q", query.Get("propertyType"))
		handlers.RespondBadRequest(w, msgInvalidPropertyType)
		return
	}

	frequency := domain.Frequency(query.Get("frequency"))
	if !domain.ValidFrequency(frequency) {
		h.logger.Warn("GET /quote - Unknown frequency: %q", query.Get("frequency"))
		handlers.RespondBadRequest(w, msgInvalidFrequency)
		return
	}

	var services []domain.AdditionalService
	if raw := query.Get("services"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			svc := domain.AdditionalService(strings.TrimSpace(name))
			if !domain.ValidAdditionalService(svc) {
				h.logger.Warn("GET /quote - Unknown additional service: %q", name)
				handlers.RespondBadRequest(w, msgInvalidService)
				return
			}
			services = append(services, svc)
		}
	}

	quote := pricing.Price(propertyType, frequency, services)
	handlers.RespondJSON(w, http.StatusOK, FromDomainQuote(propertyType, frequency, services, quote))
}
