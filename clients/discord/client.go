package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"guilddash/clients"

	"github.com/bwmarrin/discordgo"
)

var (
	discordAPIBase  = "https://discord.com/api"
	discordOAuthURL = discordAPIBase + "/oauth2/token"
	discordMeURL    = discordAPIBase + "/users/@me"
)

// DiscordClient implements the clients.DiscordClient interface on top of the
// shared gateway session. OAuth calls go over plain HTTP since discordgo does
// not support the OAuth2 token exchange.
type DiscordClient struct {
	session    *discordgo.Session
	httpClient *http.Client
}

// NewDiscordClient creates a new Discord client bound to the given gateway session
func NewDiscordClient(session *discordgo.Session, httpClient *http.Client) clients.DiscordClient {
	return &DiscordClient{
		session:    session,
		httpClient: httpClient,
	}
}

// ListGuilds returns the guilds cached on the gateway session's state
func (c *DiscordClient) ListGuilds(ctx context.Context) ([]clients.DiscordGuild, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.session.State.RLock()
	defer c.session.State.RUnlock()

	guilds := make([]clients.DiscordGuild, 0, len(c.session.State.Guilds))
	for _, guild := range c.session.State.Guilds {
		guilds = append(guilds, clients.DiscordGuild{
			ID:   guild.ID,
			Name: guild.Name,
		})
	}
	return guilds, nil
}

// GetGuildChannels fetches the guild's channel list from the Discord API
func (c *DiscordClient) GetGuildChannels(ctx context.Context, guildID string) ([]clients.DiscordChannel, error) {
	discordChannels, err := c.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild channels: %w", err)
	}

	channels := make([]clients.DiscordChannel, 0, len(discordChannels))
	for _, channel := range discordChannels {
		channels = append(channels, mapChannel(channel))
	}
	return channels, nil
}

// GetChannel fetches a single channel by id from the Discord API
func (c *DiscordClient) GetChannel(ctx context.Context, channelID string) (*clients.DiscordChannel, error) {
	discordChannel, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel: %w", err)
	}
	if discordChannel == nil {
		return nil, fmt.Errorf("channel not found")
	}

	channel := mapChannel(discordChannel)
	return &channel, nil
}

// GetChannelMessages fetches the most recent messages of a channel.
// Discord yields them newest first; the order is passed through untouched.
func (c *DiscordClient) GetChannelMessages(
	ctx context.Context,
	channelID string,
	limit int,
) ([]clients.DiscordMessage, error) {
	discordMessages, err := c.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel messages: %w", err)
	}

	messages := make([]clients.DiscordMessage, 0, len(discordMessages))
	for _, msg := range discordMessages {
		messages = append(messages, mapMessage(msg))
	}
	return messages, nil
}

// SendMessage posts plain text content to a channel
func (c *DiscordClient) SendMessage(ctx context.Context, channelID, content string) error {
	if _, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendEmbed posts a rich embed with the given description and accent color
func (c *DiscordClient) SendEmbed(ctx context.Context, channelID, description string, color int) error {
	embed := &discordgo.MessageEmbed{
		Description: description,
		Color:       color,
	}
	if _, err := c.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send embed: %w", err)
	}
	return nil
}

// ExchangeCodeForToken exchanges an OAuth authorization code for access tokens
func (c *DiscordClient) ExchangeCodeForToken(
	ctx context.Context,
	clientID, clientSecret, code, redirectURL string,
) (*clients.DiscordOAuthResponse, error) {
	data := url.Values{}
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	data.Set("grant_type", "authorization_code")
	data.Set("code", code)
	data.Set("redirect_uri", redirectURL)

	req, err := http.NewRequestWithContext(ctx, "POST", discordOAuthURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute OAuth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("OAuth request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth response body: %w", err)
	}

	var oauthResp clients.DiscordOAuthResponse
	if err := json.Unmarshal(body, &oauthResp); err != nil {
		return nil, fmt.Errorf("failed to decode OAuth response: %w", err)
	}

	return &oauthResp, nil
}

// GetCurrentUser fetches the identity of the user the access token belongs to
func (c *DiscordClient) GetCurrentUser(ctx context.Context, accessToken string) (*clients.DiscordUser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", discordMeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute identity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("identity request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var user clients.DiscordUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	return &user, nil
}

// mapChannel converts a discordgo channel to the client wire model
func mapChannel(channel *discordgo.Channel) clients.DiscordChannel {
	return clients.DiscordChannel{
		ID:      channel.ID,
		GuildID: channel.GuildID,
		Name:    channel.Name,
		IsText:  channel.Type == discordgo.ChannelTypeGuildText,
	}
}

// mapMessage converts a discordgo message to the client wire model
func mapMessage(msg *discordgo.Message) clients.DiscordMessage {
	message := clients.DiscordMessage{
		ID:        msg.ID,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}

	if msg.Author != nil {
		message.Author = msg.Author.Username
		message.AvatarURL = msg.Author.AvatarURL("64")
	}

	for _, reaction := range msg.Reactions {
		if reaction == nil || reaction.Emoji == nil {
			continue
		}
		message.Reactions = append(message.Reactions, clients.DiscordReaction{
			Emoji: reaction.Emoji.Name,
			Count: reaction.Count,
		})
	}

	return message
}
