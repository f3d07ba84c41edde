package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"billkit/internal/domain"
	"billkit/internal/port"
)

// EmailDocumentInput is the DTO for emailing a saved document.
type EmailDocumentInput struct {
	// ToEmail overrides the client's address-book email when set.
	ToEmail string `json:"to_email" binding:"omitempty,email"`
}

// MailerService emails saved documents to their clients.
type MailerService interface {
	EmailDocument(ctx context.Context, id uuid.UUID, input EmailDocumentInput) error
}

type mailerService struct {
	docRepo      port.DocumentRepository
	settingsRepo port.SettingsRepository
	sender       port.EmailSender
	log          zerolog.Logger
}

// NewMailerService creates a new MailerService implementation.
func NewMailerService(
	docRepo port.DocumentRepository,
	settingsRepo port.SettingsRepository,
	sender port.EmailSender,
	log zerolog.Logger,
) MailerService {
	return &mailerService{
		docRepo:      docRepo,
		settingsRepo: settingsRepo,
		sender:       sender,
		log:          log,
	}
}

func (s *mailerService) EmailDocument(ctx context.Context, id uuid.UUID, input EmailDocumentInput) error {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("mailer.EmailDocument: %w", err)
	}

	toEmail := input.ToEmail
	if toEmail == "" {
		toEmail = doc.Client.Email
	}
	if toEmail == "" {
		return fmt.Errorf("mailer.EmailDocument: %w: client has no email address", domain.ErrDocumentInvalid)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("mailer.EmailDocument: %w", err)
	}

	if err := s.sender.SendDocument(ctx, toEmail, doc, settings); err != nil {
		s.log.Error().Err(err).Str("document", doc.Number).Str("to", toEmail).Msg("document email failed")
		return fmt.Errorf("mailer.EmailDocument: %w", err)
	}

	s.log.Info().Str("document", doc.Number).Str("to", toEmail).Msg("document emailed")
	return nil
}
