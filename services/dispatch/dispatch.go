package dispatch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"guilddash/clients"
	"guilddash/core"
	"guilddash/models"
	"guilddash/services"
	"guilddash/utils"
)

// upstreamTimeout bounds every Discord API call made by the dispatcher.
const upstreamTimeout = 10 * time.Second

// DispatchService validates outbound send commands and routes them to the
// upstream as plain content or rich embeds. Sends are single-shot: a failed
// send is reported, never retried, to avoid duplicate delivery.
type DispatchService struct {
	discordClient clients.DiscordClient
	gatewayState  services.GatewayStateProvider
}

func NewDispatchService(
	discordClient clients.DiscordClient,
	gatewayState services.GatewayStateProvider,
) *DispatchService {
	return &DispatchService{
		discordClient: discordClient,
		gatewayState:  gatewayState,
	}
}

// SendMessage validates cmd and posts it to the target channel. Input
// validation happens before any upstream call, so a malformed command never
// touches Discord.
func (s *DispatchService) SendMessage(ctx context.Context, cmd models.SendCommand) error {
	channelID := strings.TrimSpace(cmd.ChannelID)
	content := strings.TrimSpace(cmd.Content)

	if channelID == "" {
		return fmt.Errorf("channel id is required: %w", core.ErrBadRequest)
	}
	if content == "" {
		return fmt.Errorf("message is required: %w", core.ErrBadRequest)
	}

	// Parse the accent color up front - a malformed color is caller error,
	// not something to silently default away
	color := utils.DefaultAccentColor
	if cmd.Embed {
		parsed, err := utils.ParseAccentColor(cmd.Color)
		if err != nil {
			return fmt.Errorf("%v: %w", err, core.ErrBadRequest)
		}
		color = parsed
	}

	if !s.gatewayState.IsReady() {
		log.Printf("⚠️ Send requested before gateway is ready")
		return core.ErrNotReady
	}

	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	channel, err := s.discordClient.GetChannel(ctx, channelID)
	if err != nil {
		if core.IsNotFoundError(err) {
			log.Printf("❌ Channel %s not found upstream", channelID)
			return fmt.Errorf("channel %s: %w", channelID, core.ErrInvalidChannel)
		}
		log.Printf("❌ Failed to resolve channel %s: %v", channelID, err)
		return fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}
	if !channel.IsText {
		log.Printf("❌ Channel %s is not a text channel", channelID)
		return fmt.Errorf("channel %s is not a text channel: %w", channelID, core.ErrInvalidChannel)
	}

	if cmd.Embed {
		log.Printf("📤 Sending embed to channel %s (color #%06X)", channelID, color)
		if err := s.discordClient.SendEmbed(ctx, channelID, content, color); err != nil {
			log.Printf("❌ Failed to send embed to channel %s: %v", channelID, err)
			return fmt.Errorf("failed to send embed: %w", err)
		}
	} else {
		log.Printf("📤 Sending message to channel %s", channelID)
		if err := s.discordClient.SendMessage(ctx, channelID, content); err != nil {
			log.Printf("❌ Failed to send message to channel %s: %v", channelID, err)
			return fmt.Errorf("failed to send message: %w", err)
		}
	}

	log.Printf("✅ Message dispatched to channel %s", channelID)
	return nil
}
