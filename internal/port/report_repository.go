package port

import (
	"context"

	"github.com/google/uuid"

	"billkit/internal/domain"
)

// ReportRepository defines the contract for financial reporting over saved
// documents.
type ReportRepository interface {
	TaxSummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.TaxSummaryRow, error)
	ClientLedger(ctx context.Context, clientID uuid.UUID, filters *domain.ReportFilters) ([]domain.ClientLedgerRow, error)
	MonthlySummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.MonthlySummaryRow, error)
	TypeOverview(ctx context.Context, filters *domain.ReportFilters) ([]domain.TypeOverviewRow, error)
}
