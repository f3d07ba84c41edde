package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"billkit/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDocument(ctx context.Context, toEmail string, doc *domain.Document, company *domain.CompanySettings) error {
	args := m.Called(ctx, toEmail, doc, company)
	return args.Error(0)
}

func (m *MockEmailSender) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	args := m.Called(ctx, toEmail, toName, resetToken)
	return args.Error(0)
}
