package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) Search(ctx context.Context, query string, limit int) ([]port.HSNEntry, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	entries := []port.HSNEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT code, description, gst_rate FROM hsn_codes
		WHERE code ILIKE $1 OR description ILIKE $1
		ORDER BY code
		LIMIT $2`,
		"%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.Search: %w", err)
	}
	return entries, nil
}

func (r *hsnRepo) GetByCode(ctx context.Context, code string) (*port.HSNEntry, error) {
	var entry port.HSNEntry
	err := r.db.GetContext(ctx, &entry, "SELECT code, description, gst_rate FROM hsn_codes WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("hsnRepo.GetByCode: %w", err)
	}
	return &entry, nil
}
