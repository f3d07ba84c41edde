package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LineItem is one billable row on a document. The amount and tax fields are
// derived; they are owned by the calculation engine and never hand-edited.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	HSNSAC      string    `json:"hsn_sac"`
	Quantity    float64   `json:"quantity"`
	Rate        float64   `json:"rate"`
	GSTRate     GSTRate   `json:"gst_rate"`
	Amount      float64   `json:"amount"`
	GSTAmount   float64   `json:"gst_amount"`
	CGST        float64   `json:"cgst"`
	SGST        float64   `json:"sgst"`
	IGST        float64   `json:"igst"`
}

// LineItems is stored as a single JSONB column.
type LineItems []LineItem

// Value implements driver.Valuer for JSONB storage.
func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = LineItems{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LineItems", src)
	}
}

// Client is an address-book entry for a buyer or supplier.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Pincode   string    `db:"pincode" json:"pincode"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClientSnapshot is the party record frozen onto a document. It is a copy of
// the address-book entry at selection time, stored as JSONB with the document
// so later edits to the address book do not rewrite issued paperwork.
type ClientSnapshot struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	State   string    `json:"state"`
	Pincode string    `json:"pincode"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	GSTIN   string    `json:"gstin"`
}

// Value implements driver.Valuer for JSONB storage.
func (c ClientSnapshot) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB storage.
func (c *ClientSnapshot) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = ClientSnapshot{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClientSnapshot", src)
	}
}

// Snapshot copies an address-book client onto a document.
func (c *Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		ID:      c.ID,
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		State:   c.State,
		Pincode: c.Pincode,
		Phone:   c.Phone,
		Email:   c.Email,
		GSTIN:   c.GSTIN,
	}
}

// Document is one billing artifact. Dates are kept as ISO yyyy-mm-dd strings,
// the form the front-end edits and the print view renders. The totals block is
// derived; only the calculation engine writes it.
type Document struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	Type            DocumentType   `db:"type" json:"type"`
	Number          string         `db:"number" json:"number"`
	Date            string         `db:"date" json:"date"`
	DueDate         string         `db:"due_date" json:"due_date"`
	PlaceOfSupply   string         `db:"place_of_supply" json:"place_of_supply"`
	CountryOfSupply string         `db:"country_of_supply" json:"country_of_supply"`
	Client          ClientSnapshot `db:"client" json:"client"`
	Items           LineItems      `db:"items" json:"items"`

	DiscountType    DiscountType `db:"discount_type" json:"discount_type"`
	DiscountValue   float64      `db:"discount_value" json:"discount_value"`
	ShippingCharges float64      `db:"shipping_charges" json:"shipping_charges"`

	Subtotal       float64 `db:"subtotal" json:"subtotal"`
	DiscountAmount float64 `db:"discount_amount" json:"discount_amount"`
	CGSTTotal      float64 `db:"cgst_total" json:"cgst_total"`
	SGSTTotal      float64 `db:"sgst_total" json:"sgst_total"`
	IGSTTotal      float64 `db:"igst_total" json:"igst_total"`
	RoundOff       float64 `db:"round_off" json:"round_off"`
	GrandTotal     float64 `db:"grand_total" json:"grand_total"`
	AmountInWords  string  `db:"amount_in_words" json:"amount_in_words"`

	PaymentTerms string `db:"payment_terms" json:"payment_terms"`
	Notes        string `db:"notes" json:"notes"`
	IsInterState bool   `db:"is_inter_state" json:"is_inter_state"`

	Currency CurrencyCode  `db:"currency" json:"currency"`
	Template TemplateStyle `db:"template" json:"template"`

	// Payment documents only.
	PaymentMode     string `db:"payment_mode" json:"payment_mode,omitempty"`
	ReferenceNumber string `db:"reference_number" json:"reference_number,omitempty"`

	// Job work only.
	ProcessDescription string `db:"process_description" json:"process_description,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Clone returns a deep copy of the document. Mutations operate on a clone and
// swap it in wholesale so observers never see a half-updated document.
func (d *Document) Clone() *Document {
	cp := *d
	cp.Items = make(LineItems, len(d.Items))
	copy(cp.Items, d.Items)
	return &cp
}

// PrefixMap maps document types to number prefixes, stored as JSONB.
type PrefixMap map[DocumentType]string

// Value implements driver.Valuer for JSONB storage.
func (m PrefixMap) Value() (driver.Value, error) {
	if m == nil {
		m = PrefixMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage.
func (m *PrefixMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = PrefixMap{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into PrefixMap", src)
	}
}

// CounterMap maps document types to next counter values, stored as JSONB.
type CounterMap map[DocumentType]int

// Value implements driver.Valuer for JSONB storage.
func (m CounterMap) Value() (driver.Value, error) {
	if m == nil {
		m = CounterMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB storage.
func (m *CounterMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = CounterMap{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CounterMap", src)
	}
}

// CompanySettings is the seller profile. A single row exists per installation.
type CompanySettings struct {
	ID            int64         `db:"id" json:"-"`
	Name          string        `db:"name" json:"name"`
	Address       string        `db:"address" json:"address"`
	City          string        `db:"city" json:"city"`
	State         string        `db:"state" json:"state"`
	Pincode       string        `db:"pincode" json:"pincode"`
	Phone         string        `db:"phone" json:"phone"`
	Email         string        `db:"email" json:"email"`
	GSTIN         string        `db:"gstin" json:"gstin"`
	PAN           string        `db:"pan" json:"pan"`
	LogoKey       string        `db:"logo_key" json:"logo_key"`
	SignatureKey  string        `db:"signature_key" json:"signature_key"`
	BankName      string        `db:"bank_name" json:"bank_name"`
	AccountNumber string        `db:"account_number" json:"account_number"`
	IFSC          string        `db:"ifsc" json:"ifsc"`
	UPIID         string        `db:"upi_id" json:"upi_id"`
	Terms         string        `db:"terms" json:"terms"`
	Jurisdiction  string        `db:"jurisdiction" json:"jurisdiction"`
	Prefixes      PrefixMap     `db:"prefixes" json:"prefixes"`
	Counters      CounterMap    `db:"counters" json:"counters"`
	DefaultGST    GSTRate       `db:"default_gst_rate" json:"default_gst_rate"`
	Currency      CurrencyCode  `db:"default_currency" json:"default_currency"`
	Template      TemplateStyle `db:"default_template" json:"default_template"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// DefaultCompanySettings returns the settings seeded on first run.
func DefaultCompanySettings() *CompanySettings {
	return &CompanySettings{
		State:        "Maharashtra",
		Terms:        "Goods once sold will not be taken back.\nPayment is due within the terms mentioned above.\nSubject to jurisdiction mentioned.",
		Jurisdiction: "Mumbai",
		Prefixes:     DefaultPrefixes,
		Counters:     DefaultCounters(),
		DefaultGST:   18,
		Currency:     CurrencyINR,
		Template:     TemplateModern,
	}
}

// User is the owner account. Exactly one row exists once registration is done.
type User struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Email              string     `db:"email" json:"email"`
	PasswordHash       string     `db:"password_hash" json:"-"`
	FullName           string     `db:"full_name" json:"full_name"`
	PasswordResetToken string     `db:"password_reset_token" json:"-"`
	ResetTokenExpiry   *time.Time `db:"reset_token_expiry" json:"-"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// DocumentStats is the dashboard summary over saved documents.
type DocumentStats struct {
	TotalDocuments int     `db:"total_documents" json:"total_documents"`
	SaleInvoices   int     `db:"sale_invoices" json:"sale_invoices"`
	Quotations     int     `db:"quotations" json:"quotations"`
	PurchaseDocs   int     `db:"purchase_docs" json:"purchase_docs"`
	Payments       int     `db:"payments" json:"payments"`
	TotalClients   int     `db:"total_clients" json:"total_clients"`
	SalesValue     float64 `db:"sales_value" json:"sales_value"`
	SalesTax       float64 `db:"sales_tax" json:"sales_tax"`
	ReceiptsValue  float64 `db:"receipts_value" json:"receipts_value"`
}

// ReportFilters narrows report queries to a date window and document type.
type ReportFilters struct {
	FromDate string
	ToDate   string
	Type     DocumentType
}

// TaxSummaryRow aggregates taxable value and tax by GST rate slab.
type TaxSummaryRow struct {
	GSTRate      GSTRate `db:"gst_rate" json:"gst_rate"`
	TaxableValue float64 `db:"taxable_value" json:"taxable_value"`
	CGST         float64 `db:"cgst" json:"cgst"`
	SGST         float64 `db:"sgst" json:"sgst"`
	IGST         float64 `db:"igst" json:"igst"`
	ItemCount    int     `db:"item_count" json:"item_count"`
}

// ClientLedgerRow is one document line in a per-client ledger.
type ClientLedgerRow struct {
	DocumentID uuid.UUID    `db:"document_id" json:"document_id"`
	Number     string       `db:"number" json:"number"`
	Type       DocumentType `db:"type" json:"type"`
	Date       string       `db:"date" json:"date"`
	GrandTotal float64      `db:"grand_total" json:"grand_total"`
}

// MonthlySummaryRow aggregates document value per calendar month.
type MonthlySummaryRow struct {
	Month      string  `db:"month" json:"month"`
	Documents  int     `db:"documents" json:"documents"`
	Subtotal   float64 `db:"subtotal" json:"subtotal"`
	TaxTotal   float64 `db:"tax_total" json:"tax_total"`
	GrandTotal float64 `db:"grand_total" json:"grand_total"`
}

// TypeOverviewRow aggregates counts and value per document type.
type TypeOverviewRow struct {
	Type       DocumentType `db:"type" json:"type"`
	Documents  int          `db:"documents" json:"documents"`
	GrandTotal float64      `db:"grand_total" json:"grand_total"`
}
