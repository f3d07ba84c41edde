package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/port"
)

// ClientInput is the DTO for creating and updating address-book clients.
type ClientInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	GSTIN   string `json:"gstin"`
}

// ClientService manages the address book.
type ClientService interface {
	Create(ctx context.Context, input ClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Client, int, error)
	Update(ctx context.Context, id uuid.UUID, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	clientRepo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	client := &domain.Client{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Pincode: input.Pincode,
		Phone:   input.Phone,
		Email:   input.Email,
		GSTIN:   input.GSTIN,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("client.Create: %w", err)
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.GetByID: %w", err)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, page, pageSize int) ([]domain.Client, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	clients, total, err := s.clientRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("client.List: %w", err)
	}
	return clients, total, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input ClientInput) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.Update: %w", err)
	}

	client.Name = input.Name
	client.Address = input.Address
	client.City = input.City
	client.State = input.State
	client.Pincode = input.Pincode
	client.Phone = input.Phone
	client.Email = input.Email
	client.GSTIN = input.GSTIN
	client.UpdatedAt = time.Now().UTC()

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("client.Update: %w", err)
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("client.Delete: %w", err)
	}
	return nil
}
