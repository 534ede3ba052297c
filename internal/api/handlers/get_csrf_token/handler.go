package get_csrf_token

import (
	"net/http"

	"github.com/m04kA/SWC-BookingService/internal/api/handlers"
)

// TokenResponse CSRF bootstrap response
type TokenResponse struct {
	CsrfToken string `json:"csrfToken"`
}

type Handler struct {
	csrf   CsrfIssuer
	logger Logger
}

func NewHandler(csrf CsrfIssuer, logger Logger) *Handler {
	return &Handler{
		csrf:   csrf,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings
// Binds a session cookie and returns the token the form echoes back on POST.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := h.csrf.Issue(w, r)
	handlers.RespondJSON(w, http.StatusOK, TokenResponse{CsrfToken: token})
}
