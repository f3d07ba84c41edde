package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

// filterClause builds the shared WHERE fragment for report queries. Dates are
// stored as ISO yyyy-mm-dd strings, so lexicographic comparison matches
// chronological order.
func filterClause(filters *domain.ReportFilters, startIdx int) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	idx := startIdx
	if filters.FromDate != "" {
		clause += fmt.Sprintf(" AND date >= $%d", idx)
		args = append(args, filters.FromDate)
		idx++
	}
	if filters.ToDate != "" {
		clause += fmt.Sprintf(" AND date <= $%d", idx)
		args = append(args, filters.ToDate)
		idx++
	}
	if filters.Type != "" {
		clause += fmt.Sprintf(" AND type = $%d", idx)
		args = append(args, filters.Type)
	}
	return clause, args
}

// TaxSummary aggregates line items across documents by GST rate slab, expanding
// the stored items JSONB array.
func (r *reportRepo) TaxSummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.TaxSummaryRow, error) {
	clause, args := filterClause(filters, 1)
	query := `
		SELECT
			(item->>'gst_rate')::int AS gst_rate,
			COALESCE(SUM((item->>'amount')::numeric), 0)::float8 AS taxable_value,
			COALESCE(SUM((item->>'cgst')::numeric), 0)::float8 AS cgst,
			COALESCE(SUM((item->>'sgst')::numeric), 0)::float8 AS sgst,
			COALESCE(SUM((item->>'igst')::numeric), 0)::float8 AS igst,
			COUNT(*) AS item_count
		FROM documents, jsonb_array_elements(items) AS item
		WHERE 1=1` + clause + `
		GROUP BY (item->>'gst_rate')::int
		ORDER BY gst_rate`

	rows := []domain.TaxSummaryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.TaxSummary: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ClientLedger(ctx context.Context, clientID uuid.UUID, filters *domain.ReportFilters) ([]domain.ClientLedgerRow, error) {
	clause, args := filterClause(filters, 2)
	query := `
		SELECT id AS document_id, number, type, date, grand_total
		FROM documents
		WHERE client->>'id' = $1` + clause + `
		ORDER BY date, created_at`

	rows := []domain.ClientLedgerRow{}
	allArgs := append([]interface{}{clientID.String()}, args...)
	if err := r.db.SelectContext(ctx, &rows, query, allArgs...); err != nil {
		return nil, fmt.Errorf("reportRepo.ClientLedger: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) MonthlySummary(ctx context.Context, filters *domain.ReportFilters) ([]domain.MonthlySummaryRow, error) {
	clause, args := filterClause(filters, 1)
	query := `
		SELECT
			substring(date from 1 for 7) AS month,
			COUNT(*) AS documents,
			COALESCE(SUM(subtotal), 0) AS subtotal,
			COALESCE(SUM(cgst_total + sgst_total + igst_total), 0) AS tax_total,
			COALESCE(SUM(grand_total), 0) AS grand_total
		FROM documents
		WHERE 1=1` + clause + `
		GROUP BY substring(date from 1 for 7)
		ORDER BY month`

	rows := []domain.MonthlySummaryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.MonthlySummary: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) TypeOverview(ctx context.Context, filters *domain.ReportFilters) ([]domain.TypeOverviewRow, error) {
	clause, args := filterClause(filters, 1)
	query := `
		SELECT type, COUNT(*) AS documents, COALESCE(SUM(grand_total), 0) AS grand_total
		FROM documents
		WHERE 1=1` + clause + `
		GROUP BY type
		ORDER BY documents DESC`

	rows := []domain.TypeOverviewRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.TypeOverview: %w", err)
	}
	return rows, nil
}
