package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 23)
	assert.Equal(t, "Number", row[0])
	assert.Equal(t, "Grand Total", row[16])
	assert.Equal(t, "Created At", row[22])
}

func TestWriteDocuments(t *testing.T) {
	doc := domain.Document{
		ID:     uuid.New(),
		Type:   domain.TypeSaleInvoice,
		Number: "SI-202501-0007",
		Date:   "2025-01-15",
		Client: domain.ClientSnapshot{
			Name:  "Buyer Inc",
			GSTIN: "07FGHIJ5678K2Z3",
			State: "Delhi",
		},
		PlaceOfSupply: "Delhi",
		IsInterState:  true,
		Items: []domain.LineItem{
			{Description: "Item A", Amount: 1000},
			{Description: "Item B", Amount: 2000},
		},
		Subtotal:   3000,
		IGSTTotal:  540,
		GrandTotal: 3540,
		Currency:   domain.CurrencyINR,
		CreatedAt:  time.Date(2025, 1, 14, 8, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteDocuments([]domain.Document{doc}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "SI-202501-0007", row[0])
	assert.Equal(t, "Sale Invoice", row[1])
	assert.Equal(t, "Buyer Inc", row[4])
	assert.Equal(t, "Yes", row[8])
	assert.Equal(t, "3000.00", row[9])
	assert.Equal(t, "540.00", row[13])
	assert.Equal(t, "3540.00", row[16])
	assert.Equal(t, "2", row[21])
	assert.Equal(t, "2025-01-14T08:00:00Z", row[22])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "invoices", "invoices"},
		{"spaces and slashes", "sale invoices / Jan", "sale_invoices_Jan"},
		{"keeps hyphen underscore", "sale-invoice_export", "sale-invoice_export"},
		{"collapses runs", "a   b///c", "a_b_c"},
		{"trims edges", "  weird  ", "weird"},
		{"truncates", strings.Repeat("x", 150), strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	got := BuildFilename("sale invoices", "csv")
	assert.True(t, strings.HasPrefix(got, "sale_invoices_"))
	assert.True(t, strings.HasSuffix(got, ".csv"))
	assert.Contains(t, got, time.Now().Format("2006-01-02"))
}
