package service

import (
	"context"
	"fmt"
	"strings"

	"billkit/internal/port"
)

// HSNService searches the HSN/SAC master list.
type HSNService interface {
	Search(ctx context.Context, query string, limit int) ([]port.HSNEntry, error)
	GetByCode(ctx context.Context, code string) (*port.HSNEntry, error)
}

type hsnService struct {
	hsnRepo port.HSNRepository
}

// NewHSNService creates a new HSNService implementation.
func NewHSNService(hsnRepo port.HSNRepository) HSNService {
	return &hsnService{hsnRepo: hsnRepo}
}

func (s *hsnService) Search(ctx context.Context, query string, limit int) ([]port.HSNEntry, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []port.HSNEntry{}, nil
	}
	entries, err := s.hsnRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("hsn.Search: %w", err)
	}
	return entries, nil
}

func (s *hsnService) GetByCode(ctx context.Context, code string) (*port.HSNEntry, error) {
	entry, err := s.hsnRepo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("hsn.GetByCode: %w", err)
	}
	return entry, nil
}
