package billing

import (
	"errors"
	"testing"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name        string
		item        entity.InvoiceItem
		wantTaxable string
		wantCGST    string
		wantTotal   string
		wantErr     error
	}{
		{
			name: "plain line without discount",
			item: entity.InvoiceItem{
				Qty: 5, Rate: dec("10"), DiscountPercent: dec("0"), GSTRate: dec("12"),
			},
			wantTaxable: "50",
			wantCGST:    "3",
			wantTotal:   "56",
		},
		{
			name: "line with discount",
			item: entity.InvoiceItem{
				Qty: 2, Rate: dec("100"), DiscountPercent: dec("10"), GSTRate: dec("5"),
			},
			wantTaxable: "180",
			wantCGST:    "4.5",
			wantTotal:   "189",
		},
		{
			name: "odd gst amount splits into exact halves",
			item: entity.InvoiceItem{
				Qty: 1, Rate: dec("83.45"), DiscountPercent: dec("0"), GSTRate: dec("12"),
			},
			// gst = 83.45 * 0.12 = 10.014 -> 10.01, halves 5.005
			wantTaxable: "83.45",
			wantCGST:    "5.005",
			wantTotal:   "93.46",
		},
		{
			name: "zero quantity yields zero amounts",
			item: entity.InvoiceItem{
				Qty: 0, Rate: dec("99.99"), DiscountPercent: dec("50"), GSTRate: dec("18"),
			},
			wantTaxable: "0",
			wantCGST:    "0",
			wantTotal:   "0",
		},
		{
			name: "full discount",
			item: entity.InvoiceItem{
				Qty: 3, Rate: dec("40"), DiscountPercent: dec("100"), GSTRate: dec("18"),
			},
			wantTaxable: "0",
			wantCGST:    "0",
			wantTotal:   "0",
		},
		{
			name:    "negative quantity rejected",
			item:    entity.InvoiceItem{Qty: -1, Rate: dec("10")},
			wantErr: ErrNegativeQuantity,
		},
		{
			name:    "negative free quantity rejected",
			item:    entity.InvoiceItem{Qty: 1, FreeQty: -2, Rate: dec("10")},
			wantErr: ErrNegativeFreeQuantity,
		},
		{
			name:    "negative rate rejected",
			item:    entity.InvoiceItem{Qty: 1, Rate: dec("-10")},
			wantErr: ErrNegativeRate,
		},
		{
			name:    "discount above 100 rejected",
			item:    entity.InvoiceItem{Qty: 1, Rate: dec("10"), DiscountPercent: dec("101")},
			wantErr: ErrDiscountOutOfRange,
		},
		{
			name:    "negative discount rejected",
			item:    entity.InvoiceItem{Qty: 1, Rate: dec("10"), DiscountPercent: dec("-5")},
			wantErr: ErrDiscountOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeLine(tt.item)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if !got.TaxableValue.Equal(dec(tt.wantTaxable)) {
				t.Errorf("TaxableValue = %s, want %s", got.TaxableValue, tt.wantTaxable)
			}
			if !got.CGSTAmount.Equal(dec(tt.wantCGST)) {
				t.Errorf("CGSTAmount = %s, want %s", got.CGSTAmount, tt.wantCGST)
			}
			if !got.CGSTAmount.Equal(got.SGSTAmount) {
				t.Errorf("CGST %s != SGST %s", got.CGSTAmount, got.SGSTAmount)
			}
			if !got.IGSTAmount.IsZero() {
				t.Errorf("IGSTAmount = %s, want 0", got.IGSTAmount)
			}
			if !got.TotalAmount.Equal(dec(tt.wantTotal)) {
				t.Errorf("TotalAmount = %s, want %s", got.TotalAmount, tt.wantTotal)
			}
			// cgst + sgst must reconstruct the full gst amount
			gst := got.TotalAmount.Sub(got.TaxableValue)
			if !got.CGSTAmount.Add(got.SGSTAmount).Equal(gst) {
				t.Errorf("CGST+SGST = %s, want %s", got.CGSTAmount.Add(got.SGSTAmount), gst)
			}
		})
	}
}

func TestComputeLineIdempotent(t *testing.T) {
	item := entity.InvoiceItem{
		Qty: 7, FreeQty: 1, Rate: dec("45.60"), DiscountPercent: dec("2.5"), GSTRate: dec("12"),
	}
	first, err := ComputeLine(item)
	if err != nil {
		t.Fatalf("ComputeLine() error = %v", err)
	}
	second, err := ComputeLine(first)
	if err != nil {
		t.Fatalf("ComputeLine() second pass error = %v", err)
	}
	if !first.TaxableValue.Equal(second.TaxableValue) ||
		!first.CGSTAmount.Equal(second.CGSTAmount) ||
		!first.TotalAmount.Equal(second.TotalAmount) {
		t.Errorf("recomputation changed results: %+v vs %+v", first, second)
	}
}

func TestComputeTotals(t *testing.T) {
	mustLine := func(qty int, rate, disc, gst string) entity.InvoiceItem {
		item, err := ComputeLine(entity.InvoiceItem{
			Qty: qty, Rate: dec(rate), DiscountPercent: dec(disc), GSTRate: dec(gst),
		})
		if err != nil {
			t.Fatalf("ComputeLine() error = %v", err)
		}
		return item
	}

	tests := []struct {
		name          string
		items         []entity.InvoiceItem
		wantSubTotal  string
		wantTotalGST  string
		wantGrand     string
		wantRoundOff  string
	}{
		{
			name:         "empty cart",
			items:        nil,
			wantSubTotal: "0",
			wantTotalGST: "0",
			wantGrand:    "0",
			wantRoundOff: "0",
		},
		{
			name: "rounds up to nearest rupee",
			items: []entity.InvoiceItem{
				mustLine(1, "99.50", "0", "0"), // taxable 99.50, gst 0
			},
			wantSubTotal: "99.5",
			wantTotalGST: "0",
			wantGrand:    "100",
			wantRoundOff: "0.5",
		},
		{
			name: "rounds down to nearest rupee",
			items: []entity.InvoiceItem{
				mustLine(5, "10", "0", "12"),   // taxable 50, gst 6
				mustLine(1, "83.45", "0", "12"), // taxable 83.45, gst 10.01
			},
			wantSubTotal: "133.45",
			wantTotalGST: "16.01",
			wantGrand:    "149",
			wantRoundOff: "-0.46",
		},
		{
			name: "mixed discount lines",
			items: []entity.InvoiceItem{
				mustLine(2, "100", "10", "5"), // taxable 180, gst 9
				mustLine(1, "9.30", "0", "12"), // taxable 9.30, gst 1.12
			},
			wantSubTotal: "189.3",
			wantTotalGST: "10.12",
			wantGrand:    "199",
			wantRoundOff: "-0.42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.items)
			if !got.SubTotal.Equal(dec(tt.wantSubTotal)) {
				t.Errorf("SubTotal = %s, want %s", got.SubTotal, tt.wantSubTotal)
			}
			if !got.TotalGST.Equal(dec(tt.wantTotalGST)) {
				t.Errorf("TotalGST = %s, want %s", got.TotalGST, tt.wantTotalGST)
			}
			if !got.GrandTotal.Equal(dec(tt.wantGrand)) {
				t.Errorf("GrandTotal = %s, want %s", got.GrandTotal, tt.wantGrand)
			}
			if !got.RoundOff.Equal(dec(tt.wantRoundOff)) {
				t.Errorf("RoundOff = %s, want %s", got.RoundOff, tt.wantRoundOff)
			}
			// invariants: grand = round(sub+gst), roundoff = grand-(sub+gst), |roundoff| < 1
			withGST := got.SubTotal.Add(got.TotalGST)
			if !got.GrandTotal.Equal(withGST.Round(0)) {
				t.Errorf("GrandTotal %s != round(%s)", got.GrandTotal, withGST)
			}
			if !got.RoundOff.Equal(got.GrandTotal.Sub(withGST)) {
				t.Errorf("RoundOff %s != GrandTotal - (SubTotal+TotalGST)", got.RoundOff)
			}
			if got.RoundOff.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
				t.Errorf("|RoundOff| = %s, want < 1", got.RoundOff.Abs())
			}
		})
	}
}
