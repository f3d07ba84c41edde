package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
	"billkit/internal/service"
	"billkit/mocks"
)

func storedInvoice() *domain.Document {
	return &domain.Document{
		ID:     uuid.New(),
		Type:   domain.TypeSaleInvoice,
		Number: "SI-202501-0001",
		Date:   "2025-01-10",
		Client: domain.ClientSnapshot{Name: "Acme Traders", Email: "billing@acme.test"},
	}
}

func TestMailerService_EmailDocument_UsesClientEmail(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewMailerService(docRepo, settingsRepo, sender, zerolog.Nop())

	doc := storedInvoice()
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	settingsRepo.On("Get", mock.Anything).Return(testSettings(), nil)
	sender.On("SendDocument", mock.Anything, "billing@acme.test", doc, mock.Anything).Return(nil)

	err := svc.EmailDocument(context.Background(), doc.ID, service.EmailDocumentInput{})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailerService_EmailDocument_OverrideRecipient(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewMailerService(docRepo, settingsRepo, sender, zerolog.Nop())

	doc := storedInvoice()
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	settingsRepo.On("Get", mock.Anything).Return(testSettings(), nil)
	sender.On("SendDocument", mock.Anything, "accounts@acme.test", doc, mock.Anything).Return(nil)

	err := svc.EmailDocument(context.Background(), doc.ID, service.EmailDocumentInput{ToEmail: "accounts@acme.test"})
	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailerService_EmailDocument_NoRecipient(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewMailerService(docRepo, settingsRepo, sender, zerolog.Nop())

	doc := storedInvoice()
	doc.Client.Email = ""
	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)

	err := svc.EmailDocument(context.Background(), doc.ID, service.EmailDocumentInput{})
	assert.ErrorIs(t, err, domain.ErrDocumentInvalid)
	sender.AssertNotCalled(t, "SendDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMailerService_EmailDocument_UnknownDocument(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	sender := new(mocks.MockEmailSender)
	svc := service.NewMailerService(docRepo, settingsRepo, sender, zerolog.Nop())

	id := uuid.New()
	docRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrDocumentNotFound)

	err := svc.EmailDocument(context.Background(), id, service.EmailDocumentInput{})
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}
