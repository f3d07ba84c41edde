// Package gstcalc implements the tax calculation and totals engine: per-line
// GST splits, document totals with discount/shipping/round-off, the Indian
// numbering amount-in-words rendering, and document number formatting. All
// functions are pure; callers guarantee non-negative, well-formed input.
package gstcalc

import "billkit/internal/domain"

// LineAmounts holds the derived fields of a line item.
type LineAmounts struct {
	Quantity  float64
	Rate      float64
	GSTRate   domain.GSTRate
	Amount    float64
	GSTAmount float64
	CGST      float64
	SGST      float64
	IGST      float64
}

// CalculateLineItem derives the amount and tax split for one line. Intra-state
// supply splits the GST equally into CGST and SGST; inter-state supply puts
// the whole of it into IGST. A zero GST rate zeroes all three regardless of
// the flag. Amounts are not rounded here; rounding happens once at the
// document grand total so penny errors never compound across lines.
func CalculateLineItem(quantity, rate float64, gstRate domain.GSTRate, isInterState bool) LineAmounts {
	amount := quantity * rate
	gstAmount := amount * float64(gstRate) / 100

	la := LineAmounts{
		Quantity:  quantity,
		Rate:      rate,
		GSTRate:   gstRate,
		Amount:    amount,
		GSTAmount: gstAmount,
	}

	if gstRate > 0 {
		if isInterState {
			la.IGST = gstAmount
		} else {
			la.CGST = gstAmount / 2
			la.SGST = gstAmount / 2
		}
	}
	return la
}

// ApplyTo writes the derived fields onto an item, leaving identity and the
// free-text fields untouched.
func (la LineAmounts) ApplyTo(item *domain.LineItem) {
	item.Quantity = la.Quantity
	item.Rate = la.Rate
	item.GSTRate = la.GSTRate
	item.Amount = la.Amount
	item.GSTAmount = la.GSTAmount
	item.CGST = la.CGST
	item.SGST = la.SGST
	item.IGST = la.IGST
}
