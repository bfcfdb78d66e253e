package services

import (
	"context"

	"github.com/samber/mo"

	"guilddash/models"
)

// GatewayStateProvider reports readiness of the shared gateway connection.
// Every upstream-dependent service consults it before touching Discord.
type GatewayStateProvider interface {
	IsReady() bool
}

// SessionsService defines the interface for login session operations
type SessionsService interface {
	CreateSession(ctx context.Context, identity models.Identity) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (mo.Option[*models.Session], error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// GuildsService defines the interface for projecting the upstream
// guild/channel/message graph into dashboard shapes
type GuildsService interface {
	ListGuilds(ctx context.Context) ([]*models.Guild, error)
	ListTextChannels(ctx context.Context, guildID string) ([]*models.Channel, error)
	ListRecentMessages(ctx context.Context, channelID string) ([]*models.Message, error)
}

// DispatchService defines the interface for validated outbound sends
type DispatchService interface {
	SendMessage(ctx context.Context, cmd models.SendCommand) error
}
