package port

import "context"

// HSNEntry represents a single HSN/SAC code entry with its GST rate.
type HSNEntry struct {
	Code        string  `db:"code" json:"code"`
	Description string  `db:"description" json:"description"`
	GSTRate     float64 `db:"gst_rate" json:"gst_rate"`
}

// HSNRepository defines the contract for HSN/SAC master data access.
type HSNRepository interface {
	Search(ctx context.Context, query string, limit int) ([]HSNEntry, error)
	GetByCode(ctx context.Context, code string) (*HSNEntry, error)
}
