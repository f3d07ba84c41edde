package service_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
	"billkit/internal/service"
	"billkit/mocks"
)

func testSettings() *domain.CompanySettings {
	prefixes := make(domain.PrefixMap, len(domain.DefaultPrefixes))
	for docType, prefix := range domain.DefaultPrefixes {
		prefixes[docType] = prefix
	}
	return &domain.CompanySettings{
		Name:       "Test Traders",
		State:      "Maharashtra",
		Prefixes:   prefixes,
		Counters:   domain.DefaultCounters(),
		DefaultGST: 18,
		Currency:   domain.CurrencyINR,
		Template:   domain.TemplateModern,
	}
}

func newDocService(t *testing.T) (service.DocumentService, *mocks.MockDocumentRepo, *mocks.MockClientRepo, *mocks.MockSettingsRepo) {
	t.Helper()
	docRepo := new(mocks.MockDocumentRepo)
	clientRepo := new(mocks.MockClientRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	settingsRepo.On("Get", mock.Anything).Return(testSettings(), nil)
	svc := service.NewDocumentService(docRepo, clientRepo, settingsRepo)
	return svc, docRepo, clientRepo, settingsRepo
}

func strPtr(s string) *string        { return &s }
func f64Ptr(f float64) *float64      { return &f }
func ratePtr(r domain.GSTRate) *domain.GSTRate { return &r }

func TestDocumentService_CreateNew_Defaults(t *testing.T) {
	svc, _, _, _ := newDocService(t)

	doc, err := svc.CreateNew(context.Background(), domain.TypeSaleInvoice)
	require.NoError(t, err)

	assert.Equal(t, domain.TypeSaleInvoice, doc.Type)
	assert.Regexp(t, `^SI-\d{6}-0001$`, doc.Number)
	assert.NotEmpty(t, doc.Date)
	assert.NotEmpty(t, doc.DueDate)
	assert.Equal(t, "Net 30", doc.PaymentTerms)
	assert.Equal(t, "Maharashtra", doc.PlaceOfSupply)
	assert.Equal(t, "India", doc.CountryOfSupply)
	assert.False(t, doc.IsInterState)
	assert.Empty(t, doc.Items)
	assert.Equal(t, domain.CurrencyINR, doc.Currency)
	assert.Equal(t, float64(0), doc.GrandTotal)
	assert.Equal(t, "Rupees Zero Only", doc.AmountInWords)
	assert.Same(t, doc, svc.Current())
}

func TestDocumentService_CreateNew_NoDueDateForPayments(t *testing.T) {
	svc, _, _, _ := newDocService(t)

	doc, err := svc.CreateNew(context.Background(), domain.TypeInwardPayment)
	require.NoError(t, err)

	assert.Empty(t, doc.DueDate)
	assert.Empty(t, doc.PaymentTerms)
	assert.Regexp(t, `^IP-`, doc.Number)
}

func TestDocumentService_CreateNew_InvalidType(t *testing.T) {
	svc, _, _, _ := newDocService(t)

	_, err := svc.CreateNew(context.Background(), domain.DocumentType("gift-voucher"))
	assert.ErrorIs(t, err, domain.ErrInvalidDocumentType)
}

func TestDocumentService_AddLineItem_Defaults(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Items, 1)
	item := doc.Items[0]
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, float64(1), item.Quantity)
	assert.Equal(t, float64(0), item.Rate)
	assert.Equal(t, domain.GSTRate(18), item.GSTRate)
	assert.Equal(t, float64(0), item.Amount)
}

func TestDocumentService_AddLineItem_ZeroRateForNonGSTType(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeDeliveryChallan)
	require.NoError(t, err)

	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, domain.GSTRate(0), doc.Items[0].GSTRate)
}

func TestDocumentService_AddLineItem_NoCurrentDocument(t *testing.T) {
	svc, _, _, _ := newDocService(t)

	_, err := svc.AddLineItem(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoCurrentDocument)
}

func TestDocumentService_UpdateLineItem_RecalculatesAmounts(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)

	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{
		Description: strPtr("Steel pipes"),
		Quantity:    f64Ptr(2),
		Rate:        f64Ptr(500),
	})
	require.NoError(t, err)

	item := doc.Items[0]
	assert.Equal(t, "Steel pipes", item.Description)
	assert.Equal(t, float64(1000), item.Amount)
	assert.InDelta(t, 180, item.GSTAmount, 1e-9)
	assert.InDelta(t, 90, item.CGST, 1e-9)
	assert.InDelta(t, 90, item.SGST, 1e-9)
	assert.Equal(t, float64(0), item.IGST)

	assert.Equal(t, float64(1000), doc.Subtotal)
	assert.InDelta(t, 1180, doc.GrandTotal, 1e-9)
	assert.Equal(t, "Rupees One Thousand One Hundred and Eighty Only", doc.AmountInWords)
}

func TestDocumentService_UpdateLineItem_UnknownID(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	_, err = svc.UpdateLineItem(ctx, uuid.New(), service.LineItemPatch{Rate: f64Ptr(10)})
	assert.ErrorIs(t, err, domain.ErrLineItemNotFound)
}

func TestDocumentService_UpdateLineItem_InvalidGSTRate(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{GSTRate: ratePtr(15)})
	assert.ErrorIs(t, err, domain.ErrInvalidGSTRate)
}

func TestDocumentService_UpdateLineItem_ClampsBadNumbers(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)

	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{
		Quantity: f64Ptr(-5),
		Rate:     f64Ptr(math.NaN()),
	})
	require.NoError(t, err)

	assert.Equal(t, float64(0), doc.Items[0].Quantity)
	assert.Equal(t, float64(0), doc.Items[0].Rate)
	assert.Equal(t, float64(0), doc.GrandTotal)
}

func TestDocumentService_RemoveLineItem_RefoldsTotals(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(100)})
	require.NoError(t, err)
	doc, err = svc.AddLineItem(ctx)
	require.NoError(t, err)
	second := doc.Items[1].ID
	doc, err = svc.UpdateLineItem(ctx, second, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(200)})
	require.NoError(t, err)
	assert.Equal(t, float64(300), doc.Subtotal)

	doc, err = svc.RemoveLineItem(ctx, second)
	require.NoError(t, err)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, float64(100), doc.Subtotal)
	assert.InDelta(t, 118, doc.GrandTotal, 1e-9)
}

func TestDocumentService_UpdateDiscount_DoesNotReduceTax(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(1000)})
	require.NoError(t, err)

	doc, err = svc.UpdateDiscount(ctx, service.DiscountInput{Type: domain.DiscountPercentage, Value: 10})
	require.NoError(t, err)

	assert.Equal(t, float64(100), doc.DiscountAmount)
	// Tax still computed on the undiscounted line amount.
	assert.InDelta(t, 90, doc.CGSTTotal, 1e-9)
	assert.InDelta(t, 90, doc.SGSTTotal, 1e-9)
	assert.InDelta(t, 1080, doc.GrandTotal, 1e-9)
}

func TestDocumentService_UpdateDiscount_InvalidType(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	_, err = svc.UpdateDiscount(ctx, service.DiscountInput{Type: domain.DiscountType("flat"), Value: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountType)
}

func TestDocumentService_UpdateShipping_AddedAfterDiscountUntaxed(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(1000)})
	require.NoError(t, err)

	doc, err = svc.UpdateShipping(ctx, service.ShippingInput{Charges: 250})
	require.NoError(t, err)

	assert.Equal(t, float64(250), doc.ShippingCharges)
	// Tax unchanged by shipping.
	assert.InDelta(t, 90, doc.CGSTTotal, 1e-9)
	assert.InDelta(t, 1430, doc.GrandTotal, 1e-9)
}

func TestDocumentService_ApplyField_PlaceOfSupplyFlipsInterState(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(1000)})
	require.NoError(t, err)
	assert.InDelta(t, 90, doc.Items[0].CGST, 1e-9)

	doc, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.SetPlaceOfSupply, Value: "Karnataka"})
	require.NoError(t, err)

	assert.True(t, doc.IsInterState)
	item := doc.Items[0]
	assert.Equal(t, float64(0), item.CGST)
	assert.Equal(t, float64(0), item.SGST)
	assert.InDelta(t, 180, item.IGST, 1e-9)
	assert.InDelta(t, 180, doc.IGSTTotal, 1e-9)
	assert.Equal(t, float64(0), doc.CGSTTotal)

	// And back.
	doc, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.SetPlaceOfSupply, Value: "Maharashtra"})
	require.NoError(t, err)
	assert.False(t, doc.IsInterState)
	assert.InDelta(t, 90, doc.Items[0].CGST, 1e-9)
	assert.Equal(t, float64(0), doc.Items[0].IGST)
}

func TestDocumentService_ApplyField_ClientSnapshotAdoptsState(t *testing.T) {
	svc, _, clientRepo, _ := newDocService(t)
	ctx := context.Background()

	client := &domain.Client{
		ID:    uuid.New(),
		Name:  "Acme Traders",
		State: "Karnataka",
		GSTIN: "29ABCDE1234F1Z5",
		Email: "billing@acme.test",
	}
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	doc, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(100)})
	require.NoError(t, err)

	doc, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.SetClient, Value: client.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "Acme Traders", doc.Client.Name)
	assert.Equal(t, client.ID, doc.Client.ID)
	assert.Equal(t, "Karnataka", doc.PlaceOfSupply)
	assert.True(t, doc.IsInterState)
	assert.InDelta(t, 18, doc.Items[0].IGST, 1e-9)
	clientRepo.AssertExpectations(t)
}

func TestDocumentService_ApplyField_UnknownOp(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	_, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.FieldOp("color"), Value: "red"})
	assert.Error(t, err)
}

func TestDocumentService_MutationReplacesDocument(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	before := svc.Current()

	after, err := svc.ApplyField(ctx, service.FieldCommand{Op: service.SetNotes, Value: "urgent"})
	require.NoError(t, err)

	assert.NotSame(t, before, after)
	assert.Empty(t, before.Notes)
	assert.Equal(t, "urgent", after.Notes)
	assert.Same(t, after, svc.Current())
}

func TestDocumentService_Validate_ReportsIssues(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	issues := svc.Validate()
	require.Len(t, issues, 1)

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	issues = svc.Validate()
	assert.Contains(t, issues, "client is required")
	assert.Contains(t, issues, "at least one line item is required")
}

func TestDocumentService_Save_RejectsInvalidDocument(t *testing.T) {
	svc, docRepo, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	_, err = svc.Save(ctx)
	assert.ErrorIs(t, err, domain.ErrDocumentInvalid)
	docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func saveableDocument(t *testing.T, svc service.DocumentService, clientRepo *mocks.MockClientRepo) {
	t.Helper()
	ctx := context.Background()

	client := &domain.Client{ID: uuid.New(), Name: "Acme Traders", State: "Maharashtra"}
	clientRepo.On("GetByID", mock.Anything, client.ID).Return(client, nil)

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	doc, err := svc.AddLineItem(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateLineItem(ctx, doc.Items[0].ID, service.LineItemPatch{Quantity: f64Ptr(1), Rate: f64Ptr(100)})
	require.NoError(t, err)
	_, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.SetClient, Value: client.ID.String()})
	require.NoError(t, err)
}

func TestDocumentService_Save_FirstSaveIncrementsCounter(t *testing.T) {
	svc, docRepo, clientRepo, settingsRepo := newDocService(t)
	ctx := context.Background()

	saveableDocument(t, svc, clientRepo)

	docRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	settingsRepo.On("IncrementCounter", mock.Anything, domain.TypeSaleInvoice).Return(2, nil).Once()

	doc, err := svc.Save(ctx)
	require.NoError(t, err)
	assert.NotNil(t, doc)

	// Second save updates in place without burning another number.
	docRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	_, err = svc.Save(ctx)
	require.NoError(t, err)

	docRepo.AssertExpectations(t)
	settingsRepo.AssertExpectations(t)
	settingsRepo.AssertNumberOfCalls(t, "IncrementCounter", 1)
}

func TestDocumentService_LoadEditSave_UsesUpdate(t *testing.T) {
	svc, docRepo, _, _ := newDocService(t)
	ctx := context.Background()

	stored := &domain.Document{
		ID:     uuid.New(),
		Type:   domain.TypeSaleInvoice,
		Number: "SI-202501-0007",
		Date:   "2025-01-15",
		Client: domain.ClientSnapshot{ID: uuid.New(), Name: "Acme Traders"},
		Items: domain.LineItems{
			{ID: uuid.New(), Description: "Widget", Quantity: 1, Rate: 100, GSTRate: 18, Amount: 100, GSTAmount: 18, CGST: 9, SGST: 9},
		},
		DiscountType: domain.DiscountAmount,
	}
	docRepo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
	docRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Load(ctx, stored.ID)
	require.NoError(t, err)

	_, err = svc.ApplyField(ctx, service.FieldCommand{Op: service.SetNotes, Value: "revised"})
	require.NoError(t, err)

	_, err = svc.Save(ctx)
	require.NoError(t, err)

	docRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	docRepo.AssertExpectations(t)
}

func TestDocumentService_Discard_ClearsCurrent(t *testing.T) {
	svc, _, _, _ := newDocService(t)
	ctx := context.Background()

	_, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)
	require.NotNil(t, svc.Current())

	svc.Discard()
	assert.Nil(t, svc.Current())
}

func TestDocumentService_Delete_ClearsMatchingCurrent(t *testing.T) {
	svc, docRepo, _, _ := newDocService(t)
	ctx := context.Background()

	doc, err := svc.CreateNew(ctx, domain.TypeSaleInvoice)
	require.NoError(t, err)

	docRepo.On("Delete", mock.Anything, doc.ID).Return(nil)

	err = svc.Delete(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, svc.Current())
}

func TestDocumentService_List_ClampsPaging(t *testing.T) {
	svc, docRepo, _, _ := newDocService(t)
	ctx := context.Background()

	docRepo.On("List", mock.Anything, domain.TypeSaleInvoice, 0, 20).Return([]domain.Document{}, 0, nil)

	_, _, err := svc.List(ctx, domain.TypeSaleInvoice, -3, 5000)
	require.NoError(t, err)
	docRepo.AssertExpectations(t)
}
