package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"guilddash/clients"
	"guilddash/middleware"
	"guilddash/models"
	"guilddash/services"
	"guilddash/utils"
)

var discordAuthorizeURL = "https://discord.com/oauth2/authorize"

// AuthHandler implements the OAuth login flow: redirect to Discord's
// authorization endpoint, exchange the callback code for an access token,
// resolve the caller's identity and issue a server-side session.
type AuthHandler struct {
	discordClient   clients.DiscordClient
	sessionsService services.SessionsService
	clientID        string
	clientSecret    string
	baseURL         string
	sessionSecret   string
}

func NewAuthHandler(
	discordClient clients.DiscordClient,
	sessionsService services.SessionsService,
	clientID, clientSecret, baseURL, sessionSecret string,
) *AuthHandler {
	return &AuthHandler{
		discordClient:   discordClient,
		sessionsService: sessionsService,
		clientID:        clientID,
		clientSecret:    clientSecret,
		baseURL:         baseURL,
		sessionSecret:   sessionSecret,
	}
}

// SetupEndpoints registers the unauthenticated login flow routes
func (h *AuthHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/auth/login", h.HandleLogin).Methods("GET")
	router.HandleFunc("/auth/callback", h.HandleCallback).Methods("GET")
	router.HandleFunc("/logout", h.HandleLogout).Methods("GET")
}

func (h *AuthHandler) redirectURL() string {
	return h.baseURL + "/auth/callback"
}

// HandleLogin redirects the browser to Discord's OAuth authorization endpoint
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Login request received from %s", r.RemoteAddr)

	params := url.Values{}
	params.Set("client_id", h.clientID)
	params.Set("redirect_uri", h.redirectURL())
	params.Set("response_type", "code")
	params.Set("scope", "identify")

	http.Redirect(w, r, discordAuthorizeURL+"?"+params.Encode(), http.StatusFound)
}

// HandleCallback exchanges the authorization code for an access token,
// fetches the caller's identity and issues a session cookie. Whether that
// identity is the configured owner is decided by the auth middleware on every
// protected request, not here.
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 OAuth callback received from %s", r.RemoteAddr)

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Printf("❌ OAuth callback missing authorization code")
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	oauthResp, err := h.discordClient.ExchangeCodeForToken(
		r.Context(),
		h.clientID,
		h.clientSecret,
		code,
		h.redirectURL(),
	)
	if err != nil {
		log.Printf("❌ OAuth code exchange failed: %v", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}

	discordUser, err := h.discordClient.GetCurrentUser(r.Context(), oauthResp.AccessToken)
	if err != nil {
		log.Printf("❌ Failed to fetch identity: %v", err)
		http.Error(w, "login failed", http.StatusBadGateway)
		return
	}

	identity := models.Identity{ID: discordUser.ID, Username: discordUser.Username}
	session, err := h.sessionsService.CreateSession(r.Context(), identity)
	if err != nil {
		log.Printf("❌ Failed to create session: %v", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    utils.SignSessionID(session.ID, h.sessionSecret),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(h.baseURL, "https://"),
	})

	log.Printf("✅ Login completed for identity %s (%s)", discordUser.Username, discordUser.ID)
	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout destroys the session server-side and clears the cookie
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Logout request received from %s", r.RemoteAddr)

	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if sessionID, ok := utils.VerifySignedSessionID(cookie.Value, h.sessionSecret); ok {
			if err := h.sessionsService.DeleteSession(r.Context(), sessionID); err != nil {
				log.Printf("⚠️ Failed to delete session %s: %v", sessionID, err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login.html", http.StatusFound)
}
