package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
)

// MockSettingsRepo is a mock implementation of port.SettingsRepository.
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanySettings), args.Error(1)
}

func (m *MockSettingsRepo) Save(ctx context.Context, settings *domain.CompanySettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepo) IncrementCounter(ctx context.Context, docType domain.DocumentType) (int, error) {
	args := m.Called(ctx, docType)
	return args.Int(0), args.Error(1)
}
