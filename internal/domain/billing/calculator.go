// Package billing contains the pure tax and totals calculator. It performs
// no I/O: callers pass transient line items in and get new values back.
package billing

import (
	"errors"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity     = errors.New("billing: quantity must not be negative")
	ErrNegativeFreeQuantity = errors.New("billing: free quantity must not be negative")
	ErrNegativeRate         = errors.New("billing: rate must not be negative")
	ErrDiscountOutOfRange   = errors.New("billing: discount percent must be between 0 and 100")
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// ComputeLine fills the derived fields of a line item from qty, rate,
// discount percent and GST rate:
//
//	taxable = rate*qty - rate*qty*discount/100
//	cgst    = sgst = (taxable*gstRate/100) / 2
//	total   = taxable + cgst + sgst
//
// The GST split assumes an intrastate sale. IGST (interstate) is always
// zero; interstate billing is not implemented.
//
// Monetary results are kept at two decimal places; the equal CGST/SGST
// halves may carry a third place so that they always sum back to the exact
// GST amount.
func ComputeLine(item entity.InvoiceItem) (entity.InvoiceItem, error) {
	if item.Qty < 0 {
		return item, ErrNegativeQuantity
	}
	if item.FreeQty < 0 {
		return item, ErrNegativeFreeQuantity
	}
	if item.Rate.IsNegative() {
		return item, ErrNegativeRate
	}
	if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
		return item, ErrDiscountOutOfRange
	}

	gross := item.Rate.Mul(decimal.NewFromInt(int64(item.Qty)))
	discountAmount := gross.Mul(item.DiscountPercent).Div(hundred)
	taxable := gross.Sub(discountAmount).Round(2)

	gstAmount := taxable.Mul(item.GSTRate).Div(hundred).Round(2)
	half := gstAmount.Div(two)

	item.TaxableValue = taxable
	item.CGSTAmount = half
	item.SGSTAmount = half
	item.IGSTAmount = decimal.Zero
	item.TotalAmount = taxable.Add(gstAmount)
	return item, nil
}

// Totals are the cart-level aggregates of an invoice.
type Totals struct {
	SubTotal   decimal.Decimal
	TotalGST   decimal.Decimal
	RoundOff   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals aggregates computed line items. The grand total is rounded
// to the nearest whole rupee; RoundOff is the signed difference and always
// satisfies |RoundOff| < 1.
func ComputeTotals(items []entity.InvoiceItem) Totals {
	subTotal := decimal.Zero
	totalGST := decimal.Zero
	for _, it := range items {
		subTotal = subTotal.Add(it.TaxableValue)
		totalGST = totalGST.Add(it.CGSTAmount).Add(it.SGSTAmount)
	}

	withGST := subTotal.Add(totalGST)
	grandTotal := withGST.Round(0)

	return Totals{
		SubTotal:   subTotal,
		TotalGST:   totalGST,
		RoundOff:   grandTotal.Sub(withGST),
		GrandTotal: grandTotal,
	}
}
