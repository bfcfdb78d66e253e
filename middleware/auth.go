package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"guilddash/appctx"
	"guilddash/services"
	"guilddash/utils"
)

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "guilddash_session"

// SessionAuthMiddleware authenticates requests against the server-side
// session store and enforces the single-owner allowlist: the session identity
// must equal the configured owner id, otherwise the request is rejected.
type SessionAuthMiddleware struct {
	sessionsService services.SessionsService
	sessionSecret   string
	ownerID         string
}

// NewSessionAuthMiddleware creates a new authentication middleware instance
func NewSessionAuthMiddleware(
	sessionsService services.SessionsService,
	sessionSecret, ownerID string,
) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		sessionsService: sessionsService,
		sessionSecret:   sessionSecret,
		ownerID:         ownerID,
	}
}

// WithAuth wraps an HTTP handler with session authentication. Rejections
// happen here, before any upstream Discord call is attempted.
func (m *SessionAuthMiddleware) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			log.Printf("❌ Missing session cookie on request from %s", r.RemoteAddr)
			m.writeErrorResponse(w, "authentication required", http.StatusUnauthorized)
			return
		}

		sessionID, ok := utils.VerifySignedSessionID(cookie.Value, m.sessionSecret)
		if !ok {
			log.Printf("❌ Invalid session cookie signature from %s", r.RemoteAddr)
			m.writeErrorResponse(w, "invalid session", http.StatusUnauthorized)
			return
		}

		maybeSession, err := m.sessionsService.GetSession(r.Context(), sessionID)
		if err != nil {
			log.Printf("❌ Failed to look up session %s: %v", sessionID, err)
			m.writeErrorResponse(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if !maybeSession.IsPresent() {
			log.Printf("❌ Session %s unknown or expired", sessionID)
			m.writeErrorResponse(w, "session expired", http.StatusUnauthorized)
			return
		}
		session := maybeSession.MustGet()

		if session.Identity.ID != m.ownerID {
			log.Printf("🚫 Access denied for identity %s (not the configured owner)", session.Identity.ID)
			m.writeErrorResponse(w, "access denied", http.StatusForbidden)
			return
		}

		identity := session.Identity
		ctx := appctx.SetIdentity(r.Context(), &identity)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

// writeErrorResponse writes a standardized error response
func (m *SessionAuthMiddleware) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("❌ Failed to encode error response: %v", err)
	}
}
