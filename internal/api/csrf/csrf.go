// Package csrf implements stateless double-submit protection for the public
// forms. A session cookie carries a random identifier; the token returned to
// the form is an HMAC of that identifier, so verification needs no server-side
// session store.
package csrf

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "swc_session"

// Manager issues and verifies form tokens
type Manager struct {
	secret []byte
}

// NewManager creates a manager with the given HMAC secret
func NewManager(secret []byte) *Manager {
	return &Manager{secret: secret}
}

// Issue ensures the request has a session cookie and returns the matching
// token. An existing cookie is reused so repeated form loads keep the same
// token valid.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request) string {
	sessionID := ""
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		sessionID = cookie.Value
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return m.tokenFor(sessionID)
}

// Verify checks a submitted token against the request's session cookie.
// A missing cookie with a missing token passes: the no-script form flow
// never fetched a token, and the honeypot and rate limiter still apply.
// Anything half-present or mismatched fails.
func (m *Manager) Verify(r *http.Request, token string) bool {
	cookie, err := r.Cookie(CookieName)
	hasCookie := err == nil && cookie.Value != ""

	if !hasCookie && token == "" {
		return true
	}
	if !hasCookie || token == "" {
		return false
	}

	expected := m.tokenFor(cookie.Value)
	return hmac.Equal([]byte(expected), []byte(token))
}

func (m *Manager) tokenFor(sessionID string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(sessionID))
	return hex.EncodeToString(mac.Sum(nil))
}
