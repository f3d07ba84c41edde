package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) TaxSummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.TaxSummaryRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxSummaryRow), args.Error(1)
}

func (m *MockReportRepo) ClientLedger(ctx context.Context, clientID uuid.UUID, filters *domain.ReportFilters) ([]domain.ClientLedgerRow, error) {
	args := m.Called(ctx, clientID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClientLedgerRow), args.Error(1)
}

func (m *MockReportRepo) MonthlySummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.MonthlySummaryRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySummaryRow), args.Error(1)
}

func (m *MockReportRepo) TypeOverview(ctx context.Context, filters *domain.ReportFilters) ([]domain.TypeOverviewRow, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeOverviewRow), args.Error(1)
}
