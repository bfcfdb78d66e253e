package guilds

import (
	"context"

	"github.com/stretchr/testify/mock"

	"guilddash/models"
)

// MockGuildsService is a mock implementation of the services.GuildsService interface
type MockGuildsService struct {
	mock.Mock
}

func (m *MockGuildsService) ListGuilds(ctx context.Context) ([]*models.Guild, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildsService) ListTextChannels(ctx context.Context, guildID string) ([]*models.Channel, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Channel), args.Error(1)
}

func (m *MockGuildsService) ListRecentMessages(ctx context.Context, channelID string) ([]*models.Message, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}
