// Package pdfgen renders tax invoices as PDF documents.
package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/pkg/format"
)

// InvoicePDF renders invoices for printing and download.
type InvoicePDF struct{}

func NewInvoicePDF() *InvoicePDF {
	return &InvoicePDF{}
}

// Generate renders a tax invoice as an A4 PDF. The core fonts have no
// rupee glyph, so amounts use the "Rs." prefix.
func (g *InvoicePDF) Generate(inv *entity.Invoice, company entity.CompanyProfile) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, company.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("GSTIN: %s | DL No: %s, %s", company.GSTIN, company.DLNo1, company.DLNo2), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("Phone: %s | Email: %s", company.Phone, company.Email), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "TAX INVOICE", "TB", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Invoice meta and party block
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Invoice No: %s", inv.InvoiceNo), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", format.Date(inv.Date)), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	billTo := inv.PartyName
	if billTo == "" {
		billTo = "Cash Sale"
	}
	pdf.CellFormat(95, 5, fmt.Sprintf("Bill To: %s", billTo), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, fmt.Sprintf("Bill Type: %s", inv.Type.String()), "", 1, "R", false, 0, "")
	if inv.PartyGSTIN != "" {
		pdf.CellFormat(95, 5, fmt.Sprintf("GSTIN: %s", inv.PartyGSTIN), "", 1, "L", false, 0, "")
	}
	if inv.PartyAddress != "" {
		pdf.CellFormat(190, 5, inv.PartyAddress, "", 1, "L", false, 0, "")
	}
	if inv.Logistics.Transport != "" || inv.Logistics.VehicleNo != "" {
		pdf.CellFormat(95, 5, fmt.Sprintf("Transport: %s", inv.Logistics.Transport), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, fmt.Sprintf("Vehicle: %s", inv.Logistics.VehicleNo), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Items table
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(8, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(48, 7, "Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Batch", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Expiry", "1", 0, "C", true, 0, "")
	pdf.CellFormat(16, 7, "HSN", "1", 0, "C", true, 0, "")
	pdf.CellFormat(12, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(12, 7, "Disc%", "1", 0, "C", true, 0, "")
	pdf.CellFormat(14, 7, "GST%", "1", 0, "C", true, 0, "")
	pdf.CellFormat(24, 7, "Amount", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 8)
	for _, it := range inv.Items {
		name := it.ProductName
		if len(name) > 32 {
			name = name[:29] + "..."
		}
		qty := fmt.Sprintf("%d", it.Qty)
		if it.FreeQty > 0 {
			qty = fmt.Sprintf("%d+%d", it.Qty, it.FreeQty)
		}
		pdf.CellFormat(8, 6, fmt.Sprintf("%d", it.LineNo), "1", 0, "C", false, 0, "")
		pdf.CellFormat(48, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, it.Batch, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, it.Expiry.Format("01/06"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(16, 6, it.HSN, "1", 0, "C", false, 0, "")
		pdf.CellFormat(12, 6, qty, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, it.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(12, 6, it.DiscountPercent.StringFixed(1), "1", 0, "R", false, 0, "")
		pdf.CellFormat(14, 6, it.GSTRate.StringFixed(1), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, it.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals block, right aligned
	totalRow := func(label string, v decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 10)
		pdf.CellFormat(140, 6, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(26, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, "Rs. "+v.StringFixed(2), "", 1, "R", false, 0, "")
	}
	totalRow("Sub Total:", inv.SubTotal, false)
	totalRow("Total GST:", inv.TotalGST, false)
	totalRow("Round Off:", inv.RoundOff, false)
	totalRow("Grand Total:", inv.GrandTotal, true)
	pdf.Ln(2)

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, "Amount in words: "+format.AmountInWords(inv.GrandTotal), "T", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Footer
	terms := company.Terms
	if terms == "" {
		terms = "Goods once sold will not be taken back."
	}
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(95, 5, "Terms: "+terms, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(95, 5, "For "+company.Name, "", 1, "R", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(95, 5, "Subject to local jurisdiction.", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
