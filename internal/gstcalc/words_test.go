package gstcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumToWords(t *testing.T) {
	cases := []struct {
		num  int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{13, "Thirteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred and One"},
		{999, "Nine Hundred and Ninety Nine"},
		{1000, "One Thousand"},
		{1001, "One Thousand and One"},
		{1100, "One Thousand One Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred and Ninety Nine"},
		{100000, "One Lakh"},
		{123456, "One Lakh Twenty Three Thousand Four Hundred and Fifty Six"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight"},
		{200000020, "Twenty Crore and Twenty"},
		{-47, "Minus Forty Seven"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NumToWords(tc.num), "num=%d", tc.num)
	}
}

func TestAmountToWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rupees Zero Only"},
		{100, "Rupees One Hundred Only"},
		{1180, "Rupees One Thousand One Hundred and Eighty Only"},
		{0.50, "Rupees Zero and Fifty Paise Only"},
		{1234567.89, "Rupees Twelve Lakh Thirty Four Thousand Five Hundred and Sixty Seven and Eighty Nine Paise Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountToWords(tc.amount), "amount=%v", tc.amount)
	}
}

func TestAmountToWords_PaiseRoundedNotTruncated(t *testing.T) {
	// 9.9999... paise must round up to ten, not truncate to nine.
	assert.Equal(t, "Rupees Ten and Ten Paise Only", AmountToWords(10.0999999999))
	assert.Equal(t, "Rupees Five Only", AmountToWords(5.0000000001))
}
