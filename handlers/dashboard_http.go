package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"guilddash/core"
	"guilddash/middleware"
	"guilddash/models"
	"guilddash/models/api"
)

// DashboardHTTPHandler is the thin HTTP layer over DashboardAPIHandler:
// request parsing, error-to-status mapping, JSON encoding. Upstream detail
// never crosses this boundary - clients get generic messages only.
type DashboardHTTPHandler struct {
	handler *DashboardAPIHandler
}

func NewDashboardHTTPHandler(handler *DashboardAPIHandler) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{
		handler: handler,
	}
}

// SetupEndpoints registers the protected dashboard API routes
func (h *DashboardHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.SessionAuthMiddleware) {
	router.HandleFunc("/api/guilds", authMiddleware.WithAuth(h.HandleListGuilds)).Methods("GET")
	router.HandleFunc("/api/channels/{guildID}", authMiddleware.WithAuth(h.HandleListChannels)).Methods("GET")
	router.HandleFunc("/api/messages/{channelID}", authMiddleware.WithAuth(h.HandleListMessages)).Methods("GET")
	router.HandleFunc("/api/send", authMiddleware.WithAuth(h.HandleSendMessage)).Methods("POST")
}

type SendMessageRequest struct {
	ChannelID string `json:"channelId"`
	Message   string `json:"message"`
	Embed     bool   `json:"embed"`
	Color     string `json:"color"`
}

type SendMessageResponse struct {
	Success bool `json:"success"`
}

func (h *DashboardHTTPHandler) HandleListGuilds(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 List guilds request received from %s", r.RemoteAddr)

	guilds, err := h.handler.ListGuilds(r.Context())
	if err != nil {
		h.writeTaxonomyError(w, err, "failed to list guilds")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.DomainGuildsToAPIGuilds(guilds))
}

func (h *DashboardHTTPHandler) HandleListChannels(w http.ResponseWriter, r *http.Request) {
	guildID := mux.Vars(r)["guildID"]
	log.Printf("📋 List channels request received for guild %s from %s", guildID, r.RemoteAddr)

	channels, err := h.handler.ListTextChannels(r.Context(), guildID)
	if err != nil {
		h.writeTaxonomyError(w, err, "failed to list channels")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.DomainChannelsToAPIChannels(channels))
}

func (h *DashboardHTTPHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	channelID := mux.Vars(r)["channelID"]
	log.Printf("📋 List messages request received for channel %s from %s", channelID, r.RemoteAddr)

	messages, err := h.handler.ListRecentMessages(r.Context(), channelID)
	if err != nil {
		h.writeTaxonomyError(w, err, "failed to list messages")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, api.DomainMessagesToAPIMessages(messages))
}

func (h *DashboardHTTPHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📤 Send message request received from %s", r.RemoteAddr)

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request body: %v", err)
		h.writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cmd := models.SendCommand{
		ChannelID: req.ChannelID,
		Content:   req.Message,
		Embed:     req.Embed,
		Color:     req.Color,
	}

	if err := h.handler.SendMessage(r.Context(), cmd); err != nil {
		h.writeTaxonomyError(w, err, "failed to send message")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, SendMessageResponse{Success: true})
}

// writeTaxonomyError maps a service error to its HTTP status. Sentinel
// classification happens here; everything unclassified is a 500 with a
// generic message.
func (h *DashboardHTTPHandler) writeTaxonomyError(w http.ResponseWriter, err error, genericMessage string) {
	switch {
	case errors.Is(err, core.ErrNotReady):
		h.writeErrorResponse(w, "gateway not ready", http.StatusServiceUnavailable)
	case errors.Is(err, core.ErrBadRequest):
		h.writeErrorResponse(w, "invalid request", http.StatusBadRequest)
	case errors.Is(err, core.ErrInvalidChannel):
		h.writeErrorResponse(w, "invalid channel", http.StatusBadRequest)
	case errors.Is(err, core.ErrNotFound):
		h.writeErrorResponse(w, "not found", http.StatusNotFound)
	default:
		h.writeErrorResponse(w, genericMessage, http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON response with the given status code
func (h *DashboardHTTPHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("❌ Failed to encode JSON response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response
func (h *DashboardHTTPHandler) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("❌ Failed to encode error response: %v", err)
	}
}
