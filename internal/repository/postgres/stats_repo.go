package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

const docStatsQuery = `
SELECT
	COUNT(*) AS total_documents,
	COUNT(CASE WHEN type = 'sale-invoice' THEN 1 END) AS sale_invoices,
	COUNT(CASE WHEN type = 'quotation' THEN 1 END) AS quotations,
	COUNT(CASE WHEN type IN ('purchase-invoice', 'purchase-order') THEN 1 END) AS purchase_docs,
	COUNT(CASE WHEN type IN ('inward-payment', 'outward-payment') THEN 1 END) AS payments,
	COALESCE(SUM(CASE WHEN type = 'sale-invoice' THEN grand_total ELSE 0 END), 0) AS sales_value,
	COALESCE(SUM(CASE WHEN type = 'sale-invoice' THEN cgst_total + sgst_total + igst_total ELSE 0 END), 0) AS sales_tax,
	COALESCE(SUM(CASE WHEN type = 'inward-payment' THEN grand_total ELSE 0 END), 0) AS receipts_value
FROM documents`

func (r *statsRepo) GetStats(ctx context.Context) (*domain.DocumentStats, error) {
	var stats domain.DocumentStats
	if err := r.db.GetContext(ctx, &stats, docStatsQuery); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats: %w", err)
	}
	if err := r.db.GetContext(ctx, &stats.TotalClients, "SELECT COUNT(*) FROM clients"); err != nil {
		return nil, fmt.Errorf("statsRepo.GetStats: count clients: %w", err)
	}
	return &stats, nil
}
