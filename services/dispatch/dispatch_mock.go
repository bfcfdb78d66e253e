package dispatch

import (
	"context"

	"github.com/stretchr/testify/mock"

	"guilddash/models"
)

// MockDispatchService is a mock implementation of the services.DispatchService interface
type MockDispatchService struct {
	mock.Mock
}

func (m *MockDispatchService) SendMessage(ctx context.Context, cmd models.SendCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
