package mocks

import (
	"context"

	"bookmarkhub/internal/models"
	"bookmarkhub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockInfoService is a mock implementation of services.InfoService
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo(ctx context.Context) (models.Info, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Info), args.Error(1)
}
