package sessions

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"guilddash/models"
)

// MockSessionsService is a mock implementation of the services.SessionsService interface
type MockSessionsService struct {
	mock.Mock
}

func (m *MockSessionsService) CreateSession(ctx context.Context, identity models.Identity) (*models.Session, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionsService) GetSession(ctx context.Context, sessionID string) (mo.Option[*models.Session], error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(mo.Option[*models.Session]), args.Error(1)
}

func (m *MockSessionsService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
