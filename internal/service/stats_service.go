package service

import (
	"context"
	"fmt"

	"billkit/internal/domain"
	"billkit/internal/port"
)

// StatsService provides the dashboard summary.
type StatsService interface {
	GetStats(ctx context.Context) (*domain.DocumentStats, error)
}

type statsService struct {
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(statsRepo port.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.DocumentStats, error) {
	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats.GetStats: %w", err)
	}
	return stats, nil
}
