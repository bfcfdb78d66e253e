package clients

import (
	"time"
)

// DiscordGuild represents guild information from the Discord API
type DiscordGuild struct {
	ID   string
	Name string
}

// DiscordChannel represents channel information from the Discord API
type DiscordChannel struct {
	ID      string
	GuildID string
	Name    string
	IsText  bool
}

// DiscordReaction represents a single emoji tally on a message
type DiscordReaction struct {
	Emoji string
	Count int
}

// DiscordMessage represents message information from the Discord API
type DiscordMessage struct {
	ID        string
	Author    string
	AvatarURL string
	Content   string
	Timestamp time.Time
	Reactions []DiscordReaction
}

// DiscordOAuthResponse represents the response from Discord's OAuth token exchange
type DiscordOAuthResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// DiscordUser represents the identity returned by Discord's /users/@me endpoint
type DiscordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
