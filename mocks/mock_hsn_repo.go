package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billkit/internal/port"
)

// MockHSNRepo is a mock implementation of port.HSNRepository.
type MockHSNRepo struct {
	mock.Mock
}

func (m *MockHSNRepo) Search(ctx context.Context, query string, limit int) ([]port.HSNEntry, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.HSNEntry), args.Error(1)
}

func (m *MockHSNRepo) GetByCode(ctx context.Context, code string) (*port.HSNEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.HSNEntry), args.Error(1)
}
