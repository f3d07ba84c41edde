package service

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"billkit/internal/domain"
	"billkit/internal/gstcalc"
	"billkit/internal/port"
)

// LineItemPatch carries the editable fields of a line item. Nil pointers leave
// the field untouched.
type LineItemPatch struct {
	Description *string         `json:"description"`
	HSNSAC      *string         `json:"hsn_sac"`
	Quantity    *float64        `json:"quantity"`
	Rate        *float64        `json:"rate"`
	GSTRate     *domain.GSTRate `json:"gst_rate"`
}

// FieldOp names one scalar field update on the current document.
type FieldOp string

const (
	SetPlaceOfSupply      FieldOp = "place_of_supply"
	SetClient             FieldOp = "client"
	SetNotes              FieldOp = "notes"
	SetNumber             FieldOp = "number"
	SetDate               FieldOp = "date"
	SetDueDate            FieldOp = "due_date"
	SetPaymentTerms       FieldOp = "payment_terms"
	SetPaymentMode        FieldOp = "payment_mode"
	SetReferenceNumber    FieldOp = "reference_number"
	SetProcessDescription FieldOp = "process_description"
	SetCurrency           FieldOp = "currency"
	SetTemplate           FieldOp = "template"
)

// FieldCommand is one tagged field update. Value carries the new field value;
// for SetClient it is the address-book client ID.
type FieldCommand struct {
	Op    FieldOp `json:"op" binding:"required"`
	Value string  `json:"value"`
}

// DiscountInput is the DTO for discount updates.
type DiscountInput struct {
	Type  domain.DiscountType `json:"type" binding:"required"`
	Value float64             `json:"value"`
}

// ShippingInput is the DTO for shipping charge updates.
type ShippingInput struct {
	Charges float64 `json:"charges"`
}

// DocumentService owns the single document being edited plus persistence of
// saved documents. Every mutation rebuilds the derived fields through the
// calculation engine and swaps in a fresh document value, so a concurrent
// reader always sees a fully reconciled document.
type DocumentService interface {
	Current() *domain.Document
	CreateNew(ctx context.Context, docType domain.DocumentType) (*domain.Document, error)
	AddLineItem(ctx context.Context) (*domain.Document, error)
	UpdateLineItem(ctx context.Context, itemID uuid.UUID, patch LineItemPatch) (*domain.Document, error)
	RemoveLineItem(ctx context.Context, itemID uuid.UUID) (*domain.Document, error)
	UpdateDiscount(ctx context.Context, input DiscountInput) (*domain.Document, error)
	UpdateShipping(ctx context.Context, input ShippingInput) (*domain.Document, error)
	ApplyField(ctx context.Context, cmd FieldCommand) (*domain.Document, error)
	Validate() []string
	Save(ctx context.Context) (*domain.Document, error)
	Load(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	Discard()
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	List(ctx context.Context, docType domain.DocumentType, page, pageSize int) ([]domain.Document, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	docRepo      port.DocumentRepository
	clientRepo   port.ClientRepository
	settingsRepo port.SettingsRepository

	mu      sync.Mutex
	current *domain.Document
	saved   bool
}

// NewDocumentService creates a new DocumentService implementation.
func NewDocumentService(
	docRepo port.DocumentRepository,
	clientRepo port.ClientRepository,
	settingsRepo port.SettingsRepository,
) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
	}
}

// Current returns the document being edited, or nil when there is none. The
// returned pointer is never written to again; mutations replace it wholesale.
func (s *documentService) Current() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *documentService) CreateNew(ctx context.Context, docType domain.DocumentType) (*domain.Document, error) {
	if !domain.ValidDocumentType(docType) {
		return nil, domain.ErrInvalidDocumentType
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("document.CreateNew: %w", err)
	}

	prefix, ok := settings.Prefixes[docType]
	if !ok {
		prefix = domain.DefaultPrefixes[docType]
	}
	counter, ok := settings.Counters[docType]
	if !ok {
		counter = 1
	}

	cfg := domain.TypeConfig(docType)
	today := time.Now()
	doc := &domain.Document{
		ID:              uuid.New(),
		Type:            docType,
		Number:          gstcalc.GenerateDocumentNumber(prefix, counter),
		Date:            today.Format("2006-01-02"),
		PlaceOfSupply:   settings.State,
		CountryOfSupply: "India",
		Items:           domain.LineItems{},
		DiscountType:    domain.DiscountAmount,
		Currency:        settings.Currency,
		Template:        settings.Template,
	}
	if cfg.HasDueDate {
		doc.DueDate = today.AddDate(0, 0, 30).Format("2006-01-02")
		doc.PaymentTerms = "Net 30"
	}

	gstcalc.CalculateTotals(doc.Items, doc.DiscountType, 0, 0).ApplyTo(doc)

	s.mu.Lock()
	s.current = doc
	s.saved = false
	s.mu.Unlock()
	return doc, nil
}

func (s *documentService) AddLineItem(ctx context.Context) (*domain.Document, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("document.AddLineItem: %w", err)
	}

	gstRate := settings.DefaultGST
	return s.mutate(func(doc *domain.Document) error {
		rate := gstRate
		if !domain.TypeConfig(doc.Type).HasGST {
			rate = 0
		}
		item := domain.LineItem{
			ID:       uuid.New(),
			Quantity: 1,
			GSTRate:  rate,
		}
		gstcalc.CalculateLineItem(item.Quantity, item.Rate, item.GSTRate, doc.IsInterState).ApplyTo(&item)
		doc.Items = append(doc.Items, item)
		return nil
	})
}

func (s *documentService) UpdateLineItem(ctx context.Context, itemID uuid.UUID, patch LineItemPatch) (*domain.Document, error) {
	return s.mutate(func(doc *domain.Document) error {
		idx := -1
		for i := range doc.Items {
			if doc.Items[i].ID == itemID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrLineItemNotFound
		}

		item := &doc.Items[idx]
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.HSNSAC != nil {
			item.HSNSAC = *patch.HSNSAC
		}
		if patch.Quantity != nil {
			item.Quantity = clampNumeric(*patch.Quantity)
		}
		if patch.Rate != nil {
			item.Rate = clampNumeric(*patch.Rate)
		}
		if patch.GSTRate != nil {
			if !patch.GSTRate.Valid() {
				return domain.ErrInvalidGSTRate
			}
			item.GSTRate = *patch.GSTRate
		}

		gstcalc.CalculateLineItem(item.Quantity, item.Rate, item.GSTRate, doc.IsInterState).ApplyTo(item)
		return nil
	})
}

func (s *documentService) RemoveLineItem(ctx context.Context, itemID uuid.UUID) (*domain.Document, error) {
	return s.mutate(func(doc *domain.Document) error {
		for i := range doc.Items {
			if doc.Items[i].ID == itemID {
				doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
				return nil
			}
		}
		return domain.ErrLineItemNotFound
	})
}

func (s *documentService) UpdateDiscount(ctx context.Context, input DiscountInput) (*domain.Document, error) {
	if !input.Type.Valid() {
		return nil, domain.ErrInvalidDiscountType
	}
	return s.mutate(func(doc *domain.Document) error {
		doc.DiscountType = input.Type
		doc.DiscountValue = clampNumeric(input.Value)
		return nil
	})
}

func (s *documentService) UpdateShipping(ctx context.Context, input ShippingInput) (*domain.Document, error) {
	return s.mutate(func(doc *domain.Document) error {
		doc.ShippingCharges = clampNumeric(input.Charges)
		return nil
	})
}

func (s *documentService) ApplyField(ctx context.Context, cmd FieldCommand) (*domain.Document, error) {
	switch cmd.Op {
	case SetPlaceOfSupply:
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("document.ApplyField: %w", err)
		}
		return s.mutate(func(doc *domain.Document) error {
			doc.PlaceOfSupply = cmd.Value
			refreshInterState(doc, settings.State)
			return nil
		})

	case SetClient:
		clientID, err := uuid.Parse(cmd.Value)
		if err != nil {
			return nil, domain.ErrClientNotFound
		}
		client, err := s.clientRepo.GetByID(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("document.ApplyField: %w", err)
		}
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("document.ApplyField: %w", err)
		}
		return s.mutate(func(doc *domain.Document) error {
			doc.Client = client.Snapshot()
			if client.State != "" {
				doc.PlaceOfSupply = client.State
			}
			refreshInterState(doc, settings.State)
			return nil
		})

	case SetNotes:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.Notes = v })
	case SetNumber:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.Number = v })
	case SetDate:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.Date = v })
	case SetDueDate:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.DueDate = v })
	case SetPaymentTerms:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.PaymentTerms = v })
	case SetPaymentMode:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.PaymentMode = v })
	case SetReferenceNumber:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.ReferenceNumber = v })
	case SetProcessDescription:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.ProcessDescription = v })
	case SetCurrency:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.Currency = domain.CurrencyCode(v) })
	case SetTemplate:
		return s.setString(cmd.Value, func(doc *domain.Document, v string) { doc.Template = domain.TemplateStyle(v) })
	default:
		return nil, fmt.Errorf("document.ApplyField: unknown op %q", cmd.Op)
	}
}

// Validate returns human-readable issues with the current document. An empty
// slice means it can be saved.
func (s *documentService) Validate() []string {
	s.mu.Lock()
	doc := s.current
	s.mu.Unlock()

	if doc == nil {
		return []string{"no document is being edited"}
	}

	var issues []string
	if doc.Client.Name == "" {
		issues = append(issues, "client is required")
	}
	if doc.Date == "" {
		issues = append(issues, "document date is required")
	}
	if doc.Number == "" {
		issues = append(issues, "document number is required")
	}
	if len(doc.Items) == 0 && domain.TypeConfig(doc.Type).HasGST {
		issues = append(issues, "at least one line item is required")
	}
	return issues
}

// Save persists the current document. The type counter advances only on the
// first save, so re-saving the same document never burns numbers.
func (s *documentService) Save(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	doc := s.current
	saved := s.saved
	s.mu.Unlock()

	if doc == nil {
		return nil, domain.ErrNoCurrentDocument
	}
	if issues := s.Validate(); len(issues) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentInvalid, issues)
	}

	persisted := doc.Clone()
	if saved {
		if err := s.docRepo.Update(ctx, persisted); err != nil {
			return nil, fmt.Errorf("document.Save: %w", err)
		}
	} else {
		if err := s.docRepo.Create(ctx, persisted); err != nil {
			return nil, fmt.Errorf("document.Save: %w", err)
		}
		if _, err := s.settingsRepo.IncrementCounter(ctx, persisted.Type); err != nil {
			return nil, fmt.Errorf("document.Save: %w", err)
		}
	}

	s.mu.Lock()
	s.current = persisted
	s.saved = true
	s.mu.Unlock()
	return persisted, nil
}

// Load makes a stored document the current one for further editing.
func (s *documentService) Load(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document.Load: %w", err)
	}

	s.mu.Lock()
	s.current = doc
	s.saved = true
	s.mu.Unlock()
	return doc, nil
}

// Discard drops the current document without persisting it.
func (s *documentService) Discard() {
	s.mu.Lock()
	s.current = nil
	s.saved = false
	s.mu.Unlock()
}

func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("document.Get: %w", err)
	}
	return doc, nil
}

func (s *documentService) List(ctx context.Context, docType domain.DocumentType, page, pageSize int) ([]domain.Document, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	docs, total, err := s.docRepo.List(ctx, docType, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("document.List: %w", err)
	}
	return docs, total, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.docRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("document.Delete: %w", err)
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.saved = false
	}
	s.mu.Unlock()
	return nil
}

// mutate runs fn against a clone of the current document, re-folds the totals
// from the full item list, and swaps the clone in. The pointer held by earlier
// readers keeps its old, fully consistent value.
func (s *documentService) mutate(fn func(doc *domain.Document) error) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, domain.ErrNoCurrentDocument
	}

	next := s.current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	gstcalc.CalculateTotals(next.Items, next.DiscountType, next.DiscountValue, next.ShippingCharges).ApplyTo(next)
	next.UpdatedAt = time.Now().UTC()

	s.current = next
	return next, nil
}

func (s *documentService) setString(value string, set func(doc *domain.Document, v string)) (*domain.Document, error) {
	return s.mutate(func(doc *domain.Document) error {
		set(doc, value)
		return nil
	})
}

// refreshInterState recomputes the supply flag against the seller state and
// re-splits every line; a flag flip moves the whole GST amount between the
// CGST/SGST pair and IGST.
func refreshInterState(doc *domain.Document, sellerState string) {
	doc.IsInterState = doc.PlaceOfSupply != "" && doc.PlaceOfSupply != sellerState
	for i := range doc.Items {
		item := &doc.Items[i]
		gstcalc.CalculateLineItem(item.Quantity, item.Rate, item.GSTRate, doc.IsInterState).ApplyTo(item)
	}
}

// clampNumeric normalizes NaN and negative input to zero. The calculation
// engine assumes well-formed input; this is the boundary that guarantees it.
func clampNumeric(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}
