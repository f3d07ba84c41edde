package port

import (
	"context"

	"github.com/google/uuid"

	"billkit/internal/domain"
)

// DocumentRepository defines the contract for document persistence. Documents
// are stored fully computed; the repository never derives fields itself.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, docType domain.DocumentType, offset, limit int) ([]domain.Document, int, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientRepository defines the contract for address-book persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, offset, limit int) ([]domain.Client, int, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository defines the contract for the single company settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Save(ctx context.Context, settings *domain.CompanySettings) error
	// IncrementCounter bumps the per-type document counter atomically and
	// returns the new value.
	IncrementCounter(ctx context.Context, docType domain.DocumentType) (int, error)
}

// UserRepository defines the contract for the owner account.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Get(ctx context.Context) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	SetPasswordResetToken(ctx context.Context, userID uuid.UUID, tokenID string) error
	ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash, expectedTokenID string) error
}
