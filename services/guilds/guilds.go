package guilds

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"guilddash/clients"
	"guilddash/core"
	"guilddash/models"
	"guilddash/services"
)

const (
	// messageHistoryLimit is the fixed history window for channel reads.
	messageHistoryLimit = 30
	// upstreamTimeout bounds every Discord API call so a stalled upstream
	// surfaces as an error instead of an indefinitely blocked request.
	upstreamTimeout = 10 * time.Second
)

// GuildsService projects the upstream guild/channel/message graph into the
// dashboard's flat shapes. Nothing is cached across requests - every read
// goes back to the live gateway session.
type GuildsService struct {
	discordClient clients.DiscordClient
	gatewayState  services.GatewayStateProvider
}

func NewGuildsService(
	discordClient clients.DiscordClient,
	gatewayState services.GatewayStateProvider,
) *GuildsService {
	return &GuildsService{
		discordClient: discordClient,
		gatewayState:  gatewayState,
	}
}

// ListGuilds returns every guild visible to the bot's gateway session.
// Ordering is whatever the upstream cache yields.
func (s *GuildsService) ListGuilds(ctx context.Context) ([]*models.Guild, error) {
	if !s.gatewayState.IsReady() {
		log.Printf("⚠️ Guild listing requested before gateway is ready")
		return nil, core.ErrNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	discordGuilds, err := s.discordClient.ListGuilds(ctx)
	if err != nil {
		log.Printf("❌ Failed to list guilds: %v", err)
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	guilds := make([]*models.Guild, 0, len(discordGuilds))
	for _, g := range discordGuilds {
		guilds = append(guilds, &models.Guild{ID: g.ID, Name: g.Name})
	}

	log.Printf("📋 Listed %d guilds", len(guilds))
	return guilds, nil
}

// ListTextChannels fetches the guild's channels fresh from the API and
// returns only text channels. Unknown guild ids map to core.ErrNotFound.
func (s *GuildsService) ListTextChannels(ctx context.Context, guildID string) ([]*models.Channel, error) {
	if !s.gatewayState.IsReady() {
		log.Printf("⚠️ Channel listing requested before gateway is ready")
		return nil, core.ErrNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	discordChannels, err := s.discordClient.GetGuildChannels(ctx, guildID)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Guild %s not found upstream", guildID)
			return nil, fmt.Errorf("guild %s: %w", guildID, core.ErrNotFound)
		}
		log.Printf("❌ Failed to list channels for guild %s: %v", guildID, err)
		return nil, fmt.Errorf("failed to list channels for guild %s: %w", guildID, err)
	}

	channels := make([]*models.Channel, 0, len(discordChannels))
	for _, c := range discordChannels {
		if !c.IsText {
			continue
		}
		channels = append(channels, &models.Channel{
			ID:      c.ID,
			GuildID: c.GuildID,
			Name:    c.Name,
		})
	}

	log.Printf("📋 Listed %d text channels for guild %s", len(channels), guildID)
	return channels, nil
}

// ListRecentMessages fetches the newest messages of a text channel and
// returns them oldest first, regardless of the order the upstream yields.
// Non-text or unknown channel ids map to core.ErrInvalidChannel.
func (s *GuildsService) ListRecentMessages(ctx context.Context, channelID string) ([]*models.Message, error) {
	if !s.gatewayState.IsReady() {
		log.Printf("⚠️ Message listing requested before gateway is ready")
		return nil, core.ErrNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	channel, err := s.discordClient.GetChannel(ctx, channelID)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Channel %s not found upstream", channelID)
			return nil, fmt.Errorf("channel %s: %w", channelID, core.ErrInvalidChannel)
		}
		log.Printf("❌ Failed to resolve channel %s: %v", channelID, err)
		return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}
	if !channel.IsText {
		log.Printf("❌ Channel %s is not a text channel", channelID)
		return nil, fmt.Errorf("channel %s is not a text channel: %w", channelID, core.ErrInvalidChannel)
	}

	discordMessages, err := s.discordClient.GetChannelMessages(ctx, channelID, messageHistoryLimit)
	if err != nil {
		log.Printf("❌ Failed to fetch messages for channel %s: %v", channelID, err)
		return nil, fmt.Errorf("failed to fetch messages for channel %s: %w", channelID, err)
	}

	messages := make([]*models.Message, 0, len(discordMessages))
	for _, m := range discordMessages {
		msg := &models.Message{
			ID:        m.ID,
			Author:    m.Author,
			AvatarURL: m.AvatarURL,
			Content:   m.Content,
			CreatedAt: m.Timestamp,
		}
		for _, r := range m.Reactions {
			msg.Reactions = append(msg.Reactions, models.Reaction{Emoji: r.Emoji, Count: r.Count})
		}
		messages = append(messages, msg)
	}

	// Upstream yields newest first; the caller-facing contract is oldest first
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	log.Printf("📋 Listed %d messages for channel %s", len(messages), channelID)
	return messages, nil
}
