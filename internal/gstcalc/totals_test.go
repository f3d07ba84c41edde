package gstcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billkit/internal/domain"
)

func itemWith(quantity, rate float64, gstRate domain.GSTRate, interState bool) domain.LineItem {
	var item domain.LineItem
	CalculateLineItem(quantity, rate, gstRate, interState).ApplyTo(&item)
	return item
}

func TestCalculateTotals_SingleItemNoDiscount(t *testing.T) {
	items := domain.LineItems{itemWith(2, 500, 18, false)}

	totals := CalculateTotals(items, domain.DiscountAmount, 0, 0)

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.DiscountAmount)
	assert.Equal(t, 90.0, totals.CGSTTotal)
	assert.Equal(t, 90.0, totals.SGSTTotal)
	assert.Equal(t, 0.0, totals.IGSTTotal)
	assert.Equal(t, 1180.0, totals.GrandTotal)
	assert.Equal(t, 0.0, totals.RoundOff)
}

func TestCalculateTotals_PercentageDiscount(t *testing.T) {
	items := domain.LineItems{itemWith(2, 500, 18, false)}

	totals := CalculateTotals(items, domain.DiscountPercentage, 10, 0)

	assert.Equal(t, 100.0, totals.DiscountAmount)
	// Tax stays at the pre-discount line values: 1000 - 100 + 90 + 90.
	assert.Equal(t, 1080.0, totals.GrandTotal)
	assert.Equal(t, 0.0, totals.RoundOff)
}

func TestCalculateTotals_AbsoluteDiscountNotClamped(t *testing.T) {
	items := domain.LineItems{itemWith(1, 100, 0, false)}

	totals := CalculateTotals(items, domain.DiscountAmount, 250, 0)

	assert.Equal(t, 250.0, totals.DiscountAmount)
	assert.Equal(t, -150.0, totals.GrandTotal)
}

func TestCalculateTotals_ShippingAfterDiscountUntaxed(t *testing.T) {
	items := domain.LineItems{itemWith(2, 500, 18, false)}

	totals := CalculateTotals(items, domain.DiscountPercentage, 10, 49.5)

	// 1000 - 100 + 90 + 90 + 49.5 = 1129.5, rounds half-up to 1130.
	assert.Equal(t, 1130.0, totals.GrandTotal)
	assert.InDelta(t, 0.5, totals.RoundOff, epsilon)
	// Shipping contributes no tax.
	assert.Equal(t, 180.0, totals.CGSTTotal+totals.SGSTTotal)
}

func TestCalculateTotals_RoundOffDown(t *testing.T) {
	items := domain.LineItems{itemWith(1, 99.4, 0, false)}

	totals := CalculateTotals(items, domain.DiscountAmount, 0, 0)

	assert.Equal(t, 99.0, totals.GrandTotal)
	assert.InDelta(t, -0.4, totals.RoundOff, epsilon)
}

func TestCalculateTotals_Reconciliation(t *testing.T) {
	items := domain.LineItems{
		itemWith(3, 199.99, 5, false),
		itemWith(1, 2450, 12, false),
		itemWith(7, 33.33, 28, false),
		itemWith(2, 600, 0, false),
	}

	for _, tc := range []struct {
		discountType  domain.DiscountType
		discountValue float64
		shipping      float64
	}{
		{domain.DiscountAmount, 0, 0},
		{domain.DiscountAmount, 500, 120},
		{domain.DiscountPercentage, 7.5, 0},
		{domain.DiscountPercentage, 100, 60},
	} {
		totals := CalculateTotals(items, tc.discountType, tc.discountValue, tc.shipping)

		before := totals.Subtotal - totals.DiscountAmount +
			totals.CGSTTotal + totals.SGSTTotal + totals.IGSTTotal + tc.shipping
		assert.Equal(t, roundHalfUp(before), totals.GrandTotal)
		assert.InDelta(t, totals.GrandTotal-before, totals.RoundOff, epsilon)
	}
}

func TestCalculateTotals_Idempotent(t *testing.T) {
	items := domain.LineItems{
		itemWith(2, 500, 18, true),
		itemWith(1, 129.99, 12, true),
	}

	first := CalculateTotals(items, domain.DiscountPercentage, 5, 30)
	second := CalculateTotals(items, domain.DiscountPercentage, 5, 30)

	assert.Equal(t, first, second)
}

func TestCalculateTotals_EmptyItems(t *testing.T) {
	totals := CalculateTotals(nil, domain.DiscountAmount, 0, 0)

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.GrandTotal)
	assert.Equal(t, 0.0, totals.RoundOff)
}

func TestCalculateTotals_InterStateFlip(t *testing.T) {
	intra := domain.LineItems{
		itemWith(1, 1000, 18, false),
		itemWith(2, 750, 18, false),
		itemWith(5, 99, 18, false),
	}
	inter := domain.LineItems{
		itemWith(1, 1000, 18, true),
		itemWith(2, 750, 18, true),
		itemWith(5, 99, 18, true),
	}

	intraTotals := CalculateTotals(intra, domain.DiscountAmount, 0, 0)
	interTotals := CalculateTotals(inter, domain.DiscountAmount, 0, 0)

	assert.Equal(t, 0.0, interTotals.CGSTTotal)
	assert.Equal(t, 0.0, interTotals.SGSTTotal)
	assert.InDelta(t, intraTotals.CGSTTotal+intraTotals.SGSTTotal, interTotals.IGSTTotal, epsilon)
	assert.Equal(t, intraTotals.GrandTotal, interTotals.GrandTotal)
}

func TestTotals_ApplyTo(t *testing.T) {
	doc := &domain.Document{
		Items:        domain.LineItems{itemWith(2, 500, 18, false)},
		DiscountType: domain.DiscountAmount,
	}
	CalculateTotals(doc.Items, doc.DiscountType, doc.DiscountValue, doc.ShippingCharges).ApplyTo(doc)

	assert.Equal(t, 1180.0, doc.GrandTotal)
	assert.Equal(t, "Rupees One Thousand One Hundred and Eighty Only", doc.AmountInWords)
}
