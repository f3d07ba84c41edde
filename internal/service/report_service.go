package service

import (
	"context"

	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/port"
)

// ReportService provides financial reporting over saved documents.
type ReportService interface {
	TaxSummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.TaxSummaryRow, error)
	ClientLedger(ctx context.Context, clientID uuid.UUID, filters *domain.ReportFilters) ([]domain.ClientLedgerRow, error)
	MonthlySummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.MonthlySummaryRow, error)
	TypeOverview(ctx context.Context, filters *domain.ReportFilters) ([]domain.TypeOverviewRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) TaxSummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.TaxSummaryRow, error) {
	return s.reportRepo.TaxSummary(ctx, filters)
}

func (s *reportService) ClientLedger(ctx context.Context, clientID uuid.UUID, filters *domain.ReportFilters) ([]domain.ClientLedgerRow, error) {
	return s.reportRepo.ClientLedger(ctx, clientID, filters)
}

func (s *reportService) MonthlySummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.MonthlySummaryRow, error) {
	return s.reportRepo.MonthlySummary(ctx, filters)
}

func (s *reportService) TypeOverview(ctx context.Context, filters *domain.ReportFilters) ([]domain.TypeOverviewRow, error) {
	return s.reportRepo.TypeOverview(ctx, filters)
}
