package clients

import (
	"context"
)

// DiscordClient defines the operations the dashboard performs against Discord:
// reads over the shared gateway session, single-shot sends, and the OAuth
// login exchange. Implementations must honor ctx cancellation on every call.
type DiscordClient interface {
	// ListGuilds returns every guild visible to the bot's gateway session.
	ListGuilds(ctx context.Context) ([]DiscordGuild, error)
	// GetGuildChannels fetches the current channel list of a guild from the API
	// (a fresh read, not the gateway cache).
	GetGuildChannels(ctx context.Context, guildID string) ([]DiscordChannel, error)
	// GetChannel fetches a single channel by id.
	GetChannel(ctx context.Context, channelID string) (*DiscordChannel, error)
	// GetChannelMessages fetches up to limit most recent messages of a channel,
	// in the order the upstream yields them (newest first).
	GetChannelMessages(ctx context.Context, channelID string, limit int) ([]DiscordMessage, error)
	// SendMessage posts plain text content to a channel.
	SendMessage(ctx context.Context, channelID, content string) error
	// SendEmbed posts a rich embed with the given description and accent color.
	SendEmbed(ctx context.Context, channelID, description string, color int) error

	// ExchangeCodeForToken exchanges an OAuth authorization code for access tokens.
	ExchangeCodeForToken(ctx context.Context, clientID, clientSecret, code, redirectURL string) (*DiscordOAuthResponse, error)
	// GetCurrentUser fetches the identity of the user the access token belongs to.
	GetCurrentUser(ctx context.Context, accessToken string) (*DiscordUser, error)
}
