package handlers

import (
	"context"
	"log"

	"guilddash/models"
	"guilddash/services"
)

// DashboardAPIHandler is the business-logic layer behind the dashboard's REST
// surface, composing the projection and dispatch services per request.
type DashboardAPIHandler struct {
	guildsService   services.GuildsService
	dispatchService services.DispatchService
}

func NewDashboardAPIHandler(
	guildsService services.GuildsService,
	dispatchService services.DispatchService,
) *DashboardAPIHandler {
	return &DashboardAPIHandler{
		guildsService:   guildsService,
		dispatchService: dispatchService,
	}
}

// ListGuilds returns all guilds visible to the bot
func (h *DashboardAPIHandler) ListGuilds(ctx context.Context) ([]*models.Guild, error) {
	log.Printf("📋 Listing guilds")
	guilds, err := h.guildsService.ListGuilds(ctx)
	if err != nil {
		log.Printf("❌ Failed to list guilds: %v", err)
		return nil, err
	}

	log.Printf("✅ Retrieved %d guilds", len(guilds))
	return guilds, nil
}

// ListTextChannels returns the text channels of a guild
func (h *DashboardAPIHandler) ListTextChannels(ctx context.Context, guildID string) ([]*models.Channel, error) {
	log.Printf("📋 Listing text channels for guild: %s", guildID)
	channels, err := h.guildsService.ListTextChannels(ctx, guildID)
	if err != nil {
		log.Printf("❌ Failed to list text channels: %v", err)
		return nil, err
	}

	log.Printf("✅ Retrieved %d text channels for guild: %s", len(channels), guildID)
	return channels, nil
}

// ListRecentMessages returns the recent history of a text channel, oldest first
func (h *DashboardAPIHandler) ListRecentMessages(ctx context.Context, channelID string) ([]*models.Message, error) {
	log.Printf("📋 Listing recent messages for channel: %s", channelID)
	messages, err := h.guildsService.ListRecentMessages(ctx, channelID)
	if err != nil {
		log.Printf("❌ Failed to list recent messages: %v", err)
		return nil, err
	}

	log.Printf("✅ Retrieved %d messages for channel: %s", len(messages), channelID)
	return messages, nil
}

// SendMessage dispatches an outbound send command
func (h *DashboardAPIHandler) SendMessage(ctx context.Context, cmd models.SendCommand) error {
	log.Printf("📤 Dispatching send to channel: %s (embed: %t)", cmd.ChannelID, cmd.Embed)
	if err := h.dispatchService.SendMessage(ctx, cmd); err != nil {
		log.Printf("❌ Failed to dispatch send: %v", err)
		return err
	}

	log.Printf("✅ Send dispatched to channel: %s", cmd.ChannelID)
	return nil
}
