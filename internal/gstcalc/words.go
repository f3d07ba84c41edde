package gstcalc

import (
	"math"
	"strings"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen",
	"Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
	"Seventy", "Eighty", "Ninety"}

// magnitude groups for the Indian numbering system, largest first.
var groups = []struct {
	value int64
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// NumToWords renders an integer in English words using the Indian numbering
// system (crore, lakh, thousand, hundred). The final 0-99 remainder is joined
// with "and" only when a larger group already produced output.
func NumToWords(num int64) string {
	if num == 0 {
		return "Zero"
	}
	if num < 0 {
		return "Minus " + NumToWords(-num)
	}

	var b strings.Builder
	for _, g := range groups {
		if num/g.value > 0 {
			b.WriteString(NumToWords(num / g.value))
			b.WriteString(" ")
			b.WriteString(g.name)
			b.WriteString(" ")
			num %= g.value
		}
	}

	if num > 0 {
		if b.Len() > 0 {
			b.WriteString("and ")
		}
		if num < 20 {
			b.WriteString(ones[num])
		} else {
			b.WriteString(tens[num/10])
			if num%10 > 0 {
				b.WriteString(" ")
				b.WriteString(ones[num%10])
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// AmountToWords renders a currency amount as a sentence, e.g.
// "Rupees One Hundred and Twenty Three and Fifty Paise Only". The paise part
// is rounded, not truncated, so floating-point noise just under a paise
// boundary does not drop a paise.
func AmountToWords(amount float64) string {
	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - math.Floor(amount)) * 100))

	result := "Rupees " + NumToWords(rupees)
	if paise > 0 {
		result += " and " + NumToWords(paise) + " Paise"
	}
	return result + " Only"
}
