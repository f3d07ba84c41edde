// Package export renders saved documents as CSV and XLSX downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"billkit/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Number",
	"Type",
	"Date",
	"Due Date",
	"Client Name",
	"Client GSTIN",
	"Client State",
	"Place of Supply",
	"Inter-State",
	"Subtotal",
	"Discount",
	"CGST",
	"SGST",
	"IGST",
	"Shipping",
	"Round Off",
	"Grand Total",
	"Currency",
	"Payment Terms",
	"Payment Mode",
	"Reference Number",
	"Line Item Count",
	"Created At",
}

// Writer wraps csv.Writer for exporting documents as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDocuments converts a batch of documents to CSV rows and writes them.
func (w *Writer) WriteDocuments(docs []domain.Document) error {
	for i := range docs {
		if err := w.csv.Write(documentToRow(&docs[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func documentToRow(doc *domain.Document) []string {
	row := make([]string, len(columns))
	row[0] = doc.Number
	row[1] = domain.TypeConfig(doc.Type).Label
	row[2] = doc.Date
	row[3] = doc.DueDate
	row[4] = doc.Client.Name
	row[5] = doc.Client.GSTIN
	row[6] = doc.Client.State
	row[7] = doc.PlaceOfSupply
	row[8] = formatBool(doc.IsInterState)
	row[9] = formatMoney(doc.Subtotal)
	row[10] = formatMoney(doc.DiscountAmount)
	row[11] = formatMoney(doc.CGSTTotal)
	row[12] = formatMoney(doc.SGSTTotal)
	row[13] = formatMoney(doc.IGSTTotal)
	row[14] = formatMoney(doc.ShippingCharges)
	row[15] = formatMoney(doc.RoundOff)
	row[16] = formatMoney(doc.GrandTotal)
	row[17] = string(doc.Currency)
	row[18] = doc.PaymentTerms
	row[19] = doc.PaymentMode
	row[20] = doc.ReferenceNumber
	row[21] = strconv.Itoa(len(doc.Items))
	row[22] = doc.CreatedAt.Format(time.RFC3339)
	return row
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition. Replaces
// non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), time.Now().Format("2006-01-02"), ext)
}
