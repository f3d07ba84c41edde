package domain

// DocumentType enumerates every billing document the system can produce.
type DocumentType string

const (
	TypeSaleInvoice     DocumentType = "sale-invoice"
	TypePurchaseInvoice DocumentType = "purchase-invoice"
	TypeQuotation       DocumentType = "quotation"
	TypeDeliveryChallan DocumentType = "delivery-challan"
	TypeProforma        DocumentType = "proforma"
	TypePurchaseOrder   DocumentType = "purchase-order"
	TypeSaleOrder       DocumentType = "sale-order"
	TypeJobWork         DocumentType = "job-work"
	TypeCreditNote      DocumentType = "credit-note"
	TypeDebitNote       DocumentType = "debit-note"
	TypeInwardPayment   DocumentType = "inward-payment"
	TypeOutwardPayment  DocumentType = "outward-payment"
)

// DocumentCategory groups document types for navigation and reporting.
type DocumentCategory string

const (
	CategorySales       DocumentCategory = "sales"
	CategoryPurchase    DocumentCategory = "purchase"
	CategoryOrders      DocumentCategory = "orders"
	CategoryAdjustments DocumentCategory = "adjustments"
	CategoryPayments    DocumentCategory = "payments"
)

// DocumentTypeConfig describes the capabilities of a document type.
type DocumentTypeConfig struct {
	Type        DocumentType     `json:"type"`
	Label       string           `json:"label"`
	ShortLabel  string           `json:"short_label"`
	Description string           `json:"description"`
	Category    DocumentCategory `json:"category"`
	HasGST      bool             `json:"has_gst"`
	HasPayment  bool             `json:"has_payment"`
	HasDueDate  bool             `json:"has_due_date"`
}

// DocumentTypes lists every supported document type with its capability flags.
var DocumentTypes = []DocumentTypeConfig{
	{Type: TypeSaleInvoice, Label: "Sale Invoice", ShortLabel: "Sale Inv", Description: "GST Tax Invoice for sales", Category: CategorySales, HasGST: true, HasPayment: true, HasDueDate: true},
	{Type: TypeQuotation, Label: "Quotation", ShortLabel: "Quote", Description: "Price quotation for customers", Category: CategorySales, HasGST: true, HasPayment: false, HasDueDate: true},
	{Type: TypeProforma, Label: "Proforma Invoice", ShortLabel: "Proforma", Description: "Preliminary invoice before sale", Category: CategorySales, HasGST: true, HasPayment: false, HasDueDate: true},
	{Type: TypeDeliveryChallan, Label: "Delivery Challan", ShortLabel: "DC", Description: "Goods delivery document", Category: CategorySales, HasGST: false, HasPayment: false, HasDueDate: false},
	{Type: TypePurchaseInvoice, Label: "Purchase Invoice", ShortLabel: "Purchase Inv", Description: "Invoice for purchases made", Category: CategoryPurchase, HasGST: true, HasPayment: true, HasDueDate: true},
	{Type: TypePurchaseOrder, Label: "Purchase Order", ShortLabel: "PO", Description: "Order placed to suppliers", Category: CategoryPurchase, HasGST: true, HasPayment: false, HasDueDate: true},
	{Type: TypeSaleOrder, Label: "Sale Order", ShortLabel: "SO", Description: "Confirmed order from customer", Category: CategoryOrders, HasGST: true, HasPayment: false, HasDueDate: true},
	{Type: TypeJobWork, Label: "Job Work", ShortLabel: "Job Work", Description: "Job work challan for processing", Category: CategoryOrders, HasGST: false, HasPayment: false, HasDueDate: true},
	{Type: TypeCreditNote, Label: "Credit Note", ShortLabel: "CN", Description: "Credit adjustment to customer", Category: CategoryAdjustments, HasGST: true, HasPayment: false, HasDueDate: false},
	{Type: TypeDebitNote, Label: "Debit Note", ShortLabel: "DN", Description: "Debit adjustment to supplier", Category: CategoryAdjustments, HasGST: true, HasPayment: false, HasDueDate: false},
	{Type: TypeInwardPayment, Label: "Inward Payment", ShortLabel: "Receipt", Description: "Payment received from customer", Category: CategoryPayments, HasGST: false, HasPayment: true, HasDueDate: false},
	{Type: TypeOutwardPayment, Label: "Outward Payment", ShortLabel: "Payment", Description: "Payment made to supplier", Category: CategoryPayments, HasGST: false, HasPayment: true, HasDueDate: false},
}

// TypeConfig returns the configuration for a document type. Unknown types fall
// back to the sale invoice configuration.
func TypeConfig(t DocumentType) DocumentTypeConfig {
	for _, cfg := range DocumentTypes {
		if cfg.Type == t {
			return cfg
		}
	}
	return DocumentTypes[0]
}

// TypesByCategory returns all document types belonging to a category.
func TypesByCategory(category DocumentCategory) []DocumentTypeConfig {
	var out []DocumentTypeConfig
	for _, cfg := range DocumentTypes {
		if cfg.Category == category {
			out = append(out, cfg)
		}
	}
	return out
}

// ValidDocumentType reports whether t is a known document type.
func ValidDocumentType(t DocumentType) bool {
	for _, cfg := range DocumentTypes {
		if cfg.Type == t {
			return true
		}
	}
	return false
}

// GSTRate is a GST slab percentage.
type GSTRate int

// GSTRates is the fixed slab set.
var GSTRates = []GSTRate{0, 5, 12, 18, 28}

// Valid reports whether r is one of the fixed GST slabs.
func (r GSTRate) Valid() bool {
	for _, v := range GSTRates {
		if r == v {
			return true
		}
	}
	return false
}

// DiscountType selects how Document.DiscountValue is interpreted.
type DiscountType string

const (
	DiscountAmount     DiscountType = "amount"
	DiscountPercentage DiscountType = "percentage"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountAmount || t == DiscountPercentage
}

// TemplateStyle selects the print layout rendered by the front-end.
type TemplateStyle string

const (
	TemplateMinimal     TemplateStyle = "minimal"
	TemplateCorporate   TemplateStyle = "corporate"
	TemplateModern      TemplateStyle = "modern"
	TemplateTraditional TemplateStyle = "traditional"
	TemplateService     TemplateStyle = "service"
	TemplateElegant     TemplateStyle = "elegant"
	TemplateCompact     TemplateStyle = "compact"
	TemplateDetailed    TemplateStyle = "detailed"
)

// CurrencyCode is a display label only; all arithmetic stays in the document's
// raw numeric unit and amount-in-words always renders rupees.
type CurrencyCode string

const (
	CurrencyINR CurrencyCode = "INR"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyAED CurrencyCode = "AED"
	CurrencySAR CurrencyCode = "SAR"
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyJPY CurrencyCode = "JPY"
)

// IndianStates lists every state and union territory used for place-of-supply.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Andaman and Nicobar Islands", "Chandigarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Jammu and Kashmir",
	"Ladakh", "Lakshadweep", "Puducherry",
}

// PaymentTerms lists the supported payment term labels.
var PaymentTerms = []string{
	"Advance Payment", "Due on Receipt", "Net 7", "Net 15",
	"Net 30", "Net 45", "Net 60", "Net 90",
}

// PaymentModes lists the supported payment mode labels.
var PaymentModes = []string{
	"Cash", "Bank Transfer", "UPI", "Cheque", "Credit Card",
	"Debit Card", "NEFT", "RTGS", "IMPS", "Online Banking",
}

// DefaultPrefixes maps each document type to its default number prefix.
var DefaultPrefixes = PrefixMap{
	TypeSaleInvoice:     "SI",
	TypePurchaseInvoice: "PI",
	TypeQuotation:       "QT",
	TypeDeliveryChallan: "DC",
	TypeProforma:        "PF",
	TypePurchaseOrder:   "PO",
	TypeSaleOrder:       "SO",
	TypeJobWork:         "JW",
	TypeCreditNote:      "CN",
	TypeDebitNote:       "DN",
	TypeInwardPayment:   "IP",
	TypeOutwardPayment:  "OP",
}

// DefaultCounters seeds every document type counter at 1.
func DefaultCounters() CounterMap {
	counters := make(CounterMap, len(DocumentTypes))
	for _, cfg := range DocumentTypes {
		counters[cfg.Type] = 1
	}
	return counters
}
