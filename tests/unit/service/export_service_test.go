package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
	"billkit/internal/service"
	"billkit/mocks"
)

func exportDocs() []domain.Document {
	return []domain.Document{
		{
			ID:         uuid.New(),
			Type:       domain.TypeSaleInvoice,
			Number:     "SI-202501-0001",
			Date:       "2025-01-10",
			Client:     domain.ClientSnapshot{Name: "Acme Traders"},
			GrandTotal: 1180,
			Currency:   domain.CurrencyINR,
		},
		{
			ID:         uuid.New(),
			Type:       domain.TypeQuotation,
			Number:     "QT-202501-0003",
			Date:       "2025-01-12",
			Client:     domain.ClientSnapshot{Name: "Globex"},
			GrandTotal: 500,
			Currency:   domain.CurrencyINR,
		},
	}
}

func TestExportService_WriteCSV_AllDocuments(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewExportService(docRepo)

	docRepo.On("ListAll", mock.Anything, 0, mock.AnythingOfType("int")).Return(exportDocs(), nil)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, "")
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbf"), "CSV must start with a UTF-8 BOM")
	assert.Contains(t, out, "SI-202501-0001")
	assert.Contains(t, out, "QT-202501-0003")
	assert.Contains(t, out, "Acme Traders")
	docRepo.AssertExpectations(t)
}

func TestExportService_WriteCSV_TypeFilterUsesList(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewExportService(docRepo)

	docRepo.On("List", mock.Anything, domain.TypeSaleInvoice, 0, mock.AnythingOfType("int")).
		Return(exportDocs()[:1], 1, nil)

	var buf bytes.Buffer
	err := svc.WriteCSV(context.Background(), &buf, domain.TypeSaleInvoice)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "SI-202501-0001")
	assert.NotContains(t, buf.String(), "QT-202501-0003")
	docRepo.AssertNotCalled(t, "ListAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_BuildXLSX(t *testing.T) {
	docRepo := new(mocks.MockDocumentRepo)
	svc := service.NewExportService(docRepo)

	docRepo.On("ListAll", mock.Anything, 0, mock.AnythingOfType("int")).Return(exportDocs(), nil)

	f, err := svc.BuildXLSX(context.Background(), "")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Contains(t, f.GetSheetList(), "Documents")
	assert.Contains(t, f.GetSheetList(), "Line Items")

	cell, err := f.GetCellValue("Documents", "A2")
	require.NoError(t, err)
	assert.Equal(t, "SI-202501-0001", cell)
}
