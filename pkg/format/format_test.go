package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "₹0.00"},
		{"hundreds", "999.5", "₹999.50"},
		{"thousands", "1234.56", "₹1,234.56"},
		{"lakhs", "123456.78", "₹1,23,456.78"},
		{"crores", "12345678.9", "₹1,23,45,678.90"},
		{"negative", "-1234.56", "-₹1,234.56"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Currency(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("Currency(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := Date(d); got != "05-Mar-2024" {
		t.Errorf("Date() = %q, want 05-Mar-2024", got)
	}
	if got := Date(time.Time{}); got != "" {
		t.Errorf("Date(zero) = %q, want empty", got)
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "Zero Rupees Only"},
		{"single digit", "7", "Seven Rupees Only"},
		{"teens", "14", "Fourteen Rupees Only"},
		{"round hundred", "500", "Five Hundred Rupees Only"},
		{"with and", "123", "One Hundred and Twenty Three Rupees Only"},
		{"thousands", "1234", "One Thousand Two Hundred and Thirty Four Rupees Only"},
		{"lakhs", "250000", "Two Lakh Fifty Thousand Rupees Only"},
		{"crores", "10000000", "One Crore Rupees Only"},
		{"paise rounded", "99.50", "One Hundred Rupees Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountInWords(decimal.RequireFromString(tt.amount))
			if got != tt.want {
				t.Errorf("AmountInWords(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
