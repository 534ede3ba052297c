// Package health exposes the liveness endpoint. A failed database ping
// degrades the report instead of failing it: the lead-capture endpoints
// that don't touch the database keep working.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status: "healthy",
		Checks: map[string]string{"database": "ok"},
	}

	if err := h.db.PingContext(ctx); err != nil {
		resp.Status = "degraded"
		resp.Checks["database"] = "unreachable"
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
