package noop

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"billkit/internal/domain"
	"billkit/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendDocument(_ context.Context, toEmail string, doc *domain.Document, company *domain.CompanySettings) error {
	log.Printf("[NOOP EMAIL] Document %s (%s, total %.2f) from %s to %s",
		doc.Number, doc.Type, doc.GrandTotal, company.Name, toEmail)
	return nil
}

func (s *noopSender) SendPasswordResetEmail(_ context.Context, toEmail, toName, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, url.QueryEscape(resetToken))
	log.Printf("[NOOP EMAIL] Password reset for %s (%s): %s", toName, toEmail, resetURL)
	return nil
}
