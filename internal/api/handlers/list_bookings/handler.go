package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
	"github.com/m04kA/SWC-BookingService/internal/service/bookings"
	"github.com/m04kA/SWC-BookingService/internal/service/bookings/models"
)

const msgInvalidFilter = "invalid filter parameters"

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/bookings?status=pending&postcode=BA16&startDate=2025-10-01&endDate=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("postcode"); v != "" {
		req.Postcode = &v
	}
	if v := query.Get("startDate"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /staff/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /staff/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
