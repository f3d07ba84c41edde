package port

import (
	"context"

	"billkit/internal/domain"
)

// StatsRepository defines the contract for dashboard statistics.
type StatsRepository interface {
	GetStats(ctx context.Context) (*domain.DocumentStats, error)
}
