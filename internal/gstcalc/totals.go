package gstcalc

import (
	"math"

	"billkit/internal/domain"
)

// Totals is the fully reconciled document summary.
type Totals struct {
	Subtotal       float64
	DiscountAmount float64
	CGSTTotal      float64
	SGSTTotal      float64
	IGSTTotal      float64
	RoundOff       float64
	GrandTotal     float64
}

// CalculateTotals folds the full item list into document totals. It must be
// called with the complete current list on every mutation; there is no
// incremental path, so totals can never drift from a fresh fold.
//
// Discount applies to the subtotal only. Line tax is fixed at line-calculation
// time and is not reduced by the discount. Shipping is added after the
// discount and is never taxed. The grand total is rounded half-up to the
// nearest whole rupee and the round-off records the adjustment.
func CalculateTotals(items domain.LineItems, discountType domain.DiscountType, discountValue, shippingCharges float64) Totals {
	var t Totals
	for i := range items {
		t.Subtotal += items[i].Amount
		t.CGSTTotal += items[i].CGST
		t.SGSTTotal += items[i].SGST
		t.IGSTTotal += items[i].IGST
	}

	if discountType == domain.DiscountPercentage {
		t.DiscountAmount = t.Subtotal * discountValue / 100
	} else {
		t.DiscountAmount = discountValue
	}

	totalBeforeRound := t.Subtotal - t.DiscountAmount +
		t.CGSTTotal + t.SGSTTotal + t.IGSTTotal + shippingCharges

	t.GrandTotal = roundHalfUp(totalBeforeRound)
	t.RoundOff = t.GrandTotal - totalBeforeRound
	return t
}

// ApplyTo writes the totals block onto a document.
func (t Totals) ApplyTo(doc *domain.Document) {
	doc.Subtotal = t.Subtotal
	doc.DiscountAmount = t.DiscountAmount
	doc.CGSTTotal = t.CGSTTotal
	doc.SGSTTotal = t.SGSTTotal
	doc.IGSTTotal = t.IGSTTotal
	doc.RoundOff = t.RoundOff
	doc.GrandTotal = t.GrandTotal
	doc.AmountInWords = AmountToWords(t.GrandTotal)
}

// roundHalfUp rounds to the nearest integer with halves going up, so -0.5
// rounds to 0 rather than away from zero as math.Round would.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
