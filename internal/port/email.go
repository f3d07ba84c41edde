package port

import (
	"context"

	"billkit/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	// SendDocument mails a summary of a saved document to the client.
	SendDocument(ctx context.Context, toEmail string, doc *domain.Document, company *domain.CompanySettings) error
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error
}
