package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guilddash/clients"
)

func TestDiscordClient_ExchangeCodeForToken_Success(t *testing.T) {
	// Mock server setup
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Validate request
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		// Parse form data
		err := r.ParseForm()
		require.NoError(t, err)
		assert.Equal(t, "test-client-id", r.FormValue("client_id"))
		assert.Equal(t, "test-client-secret", r.FormValue("client_secret"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))
		assert.Equal(t, "test-auth-code", r.FormValue("code"))
		assert.Equal(t, "https://example.com/auth/callback", r.FormValue("redirect_uri"))

		// Return successful response
		response := clients.DiscordOAuthResponse{
			AccessToken: "test-access-token",
			TokenType:   "Bearer",
			ExpiresIn:   3600,
			Scope:       "identify",
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	// Temporarily override the Discord API URL for testing
	originalURL := discordOAuthURL
	discordOAuthURL = server.URL + "/oauth2/token"
	defer func() { discordOAuthURL = originalURL }()

	client := NewDiscordClient(nil, &http.Client{})

	response, err := client.ExchangeCodeForToken(
		context.Background(),
		"test-client-id",
		"test-client-secret",
		"test-auth-code",
		"https://example.com/auth/callback",
	)

	require.NoError(t, err)
	assert.NotNil(t, response)
	assert.Equal(t, "test-access-token", response.AccessToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, 3600, response.ExpiresIn)
	assert.Equal(t, "identify", response.Scope)
}

func TestDiscordClient_ExchangeCodeForToken_HTTPError(t *testing.T) {
	// Mock server that returns an error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_grant", "error_description": "Invalid authorization code"}`))
	}))
	defer server.Close()

	originalURL := discordOAuthURL
	discordOAuthURL = server.URL + "/oauth2/token"
	defer func() { discordOAuthURL = originalURL }()

	client := NewDiscordClient(nil, &http.Client{})

	response, err := client.ExchangeCodeForToken(
		context.Background(),
		"test-client-id",
		"test-client-secret",
		"invalid-code",
		"https://example.com/auth/callback",
	)

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "OAuth request failed with status 400")
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestDiscordClient_ExchangeCodeForToken_InvalidJSON(t *testing.T) {
	// Mock server that returns invalid JSON
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`invalid json response`))
	}))
	defer server.Close()

	originalURL := discordOAuthURL
	discordOAuthURL = server.URL + "/oauth2/token"
	defer func() { discordOAuthURL = originalURL }()

	client := NewDiscordClient(nil, &http.Client{})

	response, err := client.ExchangeCodeForToken(
		context.Background(),
		"test-client-id",
		"test-client-secret",
		"test-code",
		"https://example.com/auth/callback",
	)

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "failed to decode OAuth response")
}

func TestDiscordClient_GetCurrentUser_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/users/@me", r.URL.Path)
		assert.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"1234567890","username":"owner"}`))
	}))
	defer server.Close()

	originalURL := discordMeURL
	discordMeURL = server.URL + "/users/@me"
	defer func() { discordMeURL = originalURL }()

	client := NewDiscordClient(nil, &http.Client{})

	user, err := client.GetCurrentUser(context.Background(), "test-access-token")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", user.ID)
	assert.Equal(t, "owner", user.Username)
}

func TestDiscordClient_GetCurrentUser_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "401: Unauthorized", "code": 0}`))
	}))
	defer server.Close()

	originalURL := discordMeURL
	discordMeURL = server.URL + "/users/@me"
	defer func() { discordMeURL = originalURL }()

	client := NewDiscordClient(nil, &http.Client{})

	user, err := client.GetCurrentUser(context.Background(), "revoked-token")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "identity request failed with status 401")
}

func TestMapChannel(t *testing.T) {
	testCases := []struct {
		name        string
		channelType discordgo.ChannelType
		expectText  bool
	}{
		{name: "guild text", channelType: discordgo.ChannelTypeGuildText, expectText: true},
		{name: "guild voice", channelType: discordgo.ChannelTypeGuildVoice, expectText: false},
		{name: "category", channelType: discordgo.ChannelTypeGuildCategory, expectText: false},
		{name: "news", channelType: discordgo.ChannelTypeGuildNews, expectText: false},
		{name: "public thread", channelType: discordgo.ChannelTypeGuildPublicThread, expectText: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			channel := mapChannel(&discordgo.Channel{
				ID:      "c1",
				GuildID: "g1",
				Name:    "general",
				Type:    tc.channelType,
			})

			assert.Equal(t, "c1", channel.ID)
			assert.Equal(t, "g1", channel.GuildID)
			assert.Equal(t, "general", channel.Name)
			assert.Equal(t, tc.expectText, channel.IsText)
		})
	}
}

func TestMapMessage(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	message := mapMessage(&discordgo.Message{
		ID:        "m1",
		Content:   "hello",
		Timestamp: ts,
		Author: &discordgo.User{
			ID:       "u1",
			Username: "alice",
			Avatar:   "abc123",
		},
		Reactions: []*discordgo.MessageReactions{
			{Count: 3, Emoji: &discordgo.Emoji{Name: "👍"}},
			{Count: 1, Emoji: &discordgo.Emoji{Name: "🔥"}},
		},
	})

	assert.Equal(t, "m1", message.ID)
	assert.Equal(t, "hello", message.Content)
	assert.Equal(t, ts, message.Timestamp)
	assert.Equal(t, "alice", message.Author)
	assert.Contains(t, message.AvatarURL, "abc123")
	require.Len(t, message.Reactions, 2)
	assert.Equal(t, clients.DiscordReaction{Emoji: "👍", Count: 3}, message.Reactions[0])
	assert.Equal(t, clients.DiscordReaction{Emoji: "🔥", Count: 1}, message.Reactions[1])
}

func TestMapMessage_NoAuthor(t *testing.T) {
	// Webhook/system messages can arrive without an author payload
	message := mapMessage(&discordgo.Message{ID: "m1", Content: "hi"})

	assert.Equal(t, "", message.Author)
	assert.Equal(t, "", message.AvatarURL)
}
