package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
)

type stubPDFGenerator struct {
	calls int
	fail  bool
}

func (g *stubPDFGenerator) Generate(inv *entity.Invoice, _ entity.CompanyProfile) ([]byte, error) {
	g.calls++
	if g.fail {
		return nil, errors.New("render failed")
	}
	return []byte("%PDF-" + inv.InvoiceNo), nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newBillingFixture(products ...*entity.Product) (*BillingService, *fakeProductRepo, *fakeInvoiceRepo, *stubPDFGenerator) {
	productRepo := newFakeProductRepo(products...)
	invoiceRepo := newFakeInvoiceRepo(productRepo)
	pdfGen := &stubPDFGenerator{}
	svc := NewBillingService(invoiceRepo, productRepo, newFakePartyRepo(), newFakeSettingsRepo(), pdfGen)
	return svc, productRepo, invoiceRepo, pdfGen
}

func TestCommitInvoiceRejectsEmptyCart(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	_, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type: enum.BillTypeRetail,
	})
	if !errors.Is(err, apperror.ErrEmptyCart) {
		t.Fatalf("CommitInvoice() error = %v, want ErrEmptyCart", err)
	}
}

func TestCommitInvoiceRequiresPartyForWholesale(t *testing.T) {
	product := &entity.Product{Name: "Paracetamol", Stock: 10, SaleRate: dec("10")}
	svc, _, _, _ := newBillingFixture(product)

	_, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeWholesale,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 1}},
	})
	if !errors.Is(err, apperror.ErrPartyRequired) {
		t.Fatalf("CommitInvoice() error = %v, want ErrPartyRequired", err)
	}
}

func TestCommitInvoiceRetailCashSale(t *testing.T) {
	product := &entity.Product{
		Name:     "Paracetamol 500mg",
		Batch:    "B1",
		Stock:    100,
		SaleRate: dec("10"),
		GSTRate:  dec("12"),
	}
	svc, productRepo, _, pdfGen := newBillingFixture(product)

	invoice, pdfBytes, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 5, FreeQty: 1}},
	})
	if err != nil {
		t.Fatalf("CommitInvoice() error = %v", err)
	}

	if invoice.InvoiceNo != "TI-100" {
		t.Errorf("InvoiceNo = %q, want TI-100", invoice.InvoiceNo)
	}
	if invoice.PartyName != "Cash Sale" {
		t.Errorf("PartyName = %q, want Cash Sale", invoice.PartyName)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(invoice.Items))
	}

	// 5 x 10 = 50 taxable, 12% GST = 6, grand = 56
	item := invoice.Items[0]
	if !item.TaxableValue.Equal(dec("50")) {
		t.Errorf("TaxableValue = %s, want 50", item.TaxableValue)
	}
	if !item.CGSTAmount.Equal(dec("3")) || !item.SGSTAmount.Equal(dec("3")) {
		t.Errorf("CGST/SGST = %s/%s, want 3/3", item.CGSTAmount, item.SGSTAmount)
	}
	if !invoice.GrandTotal.Equal(dec("56")) {
		t.Errorf("GrandTotal = %s, want 56", invoice.GrandTotal)
	}

	// free units leave the shelf too
	if got := productRepo.products[product.ID].Stock; got != 94 {
		t.Errorf("stock after commit = %d, want 94", got)
	}

	if pdfGen.calls != 1 {
		t.Errorf("pdf generator calls = %d, want 1", pdfGen.calls)
	}
	if len(pdfBytes) == 0 {
		t.Error("expected PDF bytes alongside the committed invoice")
	}
}

func TestCommitInvoiceWholesaleSnapshotsParty(t *testing.T) {
	product := &entity.Product{Name: "Amoxycillin", Stock: 50, SaleRate: dec("25"), GSTRate: dec("5")}
	productRepo := newFakeProductRepo(product)
	invoiceRepo := newFakeInvoiceRepo(productRepo)
	party := &entity.Party{Name: "Sharma Medicals", GSTIN: "07ABCDE1234F1Z5", Address: "Karol Bagh"}
	partyRepo := newFakePartyRepo(party)
	svc := NewBillingService(invoiceRepo, productRepo, partyRepo, newFakeSettingsRepo(), nil)

	invoice, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:    enum.BillTypeWholesale,
		PartyID: &party.ID,
		Items:   []CartLineInput{{ProductID: product.ID, Qty: 10}},
	})
	if err != nil {
		t.Fatalf("CommitInvoice() error = %v", err)
	}
	if invoice.PartyName != "Sharma Medicals" || invoice.PartyGSTIN != "07ABCDE1234F1Z5" {
		t.Errorf("party snapshot = %q/%q", invoice.PartyName, invoice.PartyGSTIN)
	}
	if invoice.PartyID == nil || *invoice.PartyID != party.ID {
		t.Error("expected PartyID to reference the selected party")
	}
}

func TestCommitInvoiceNumbersAreSequential(t *testing.T) {
	product := &entity.Product{Name: "Cetirizine", Stock: 1000, SaleRate: dec("5")}
	svc, _, _, _ := newBillingFixture(product)

	for i := 0; i < 3; i++ {
		invoice, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
			Type:  enum.BillTypeRetail,
			Items: []CartLineInput{{ProductID: product.ID, Qty: 1}},
		})
		if err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
		want := fmt.Sprintf("TI-%d", 100+i)
		if invoice.InvoiceNo != want {
			t.Errorf("commit %d: InvoiceNo = %q, want %q", i, invoice.InvoiceNo, want)
		}
	}
}

func TestCommitInvoiceInsufficientStock(t *testing.T) {
	product := &entity.Product{Name: "Insulin", Stock: 3, SaleRate: dec("300")}
	svc, productRepo, invoiceRepo, pdfGen := newBillingFixture(product)

	_, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 2, FreeQty: 2}},
	})
	if err == nil {
		t.Fatal("CommitInvoice() expected error for insufficient stock")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 400 {
		t.Errorf("error code = %d, want 400", appErr.Code)
	}

	// nothing committed, nothing decremented, sequence untouched
	if got := productRepo.products[product.ID].Stock; got != 3 {
		t.Errorf("stock = %d, want 3", got)
	}
	if len(invoiceRepo.invoices) != 0 {
		t.Errorf("invoices stored = %d, want 0", len(invoiceRepo.invoices))
	}
	if invoiceRepo.nextNumber != 100 {
		t.Errorf("sequence advanced to %d on a failed commit", invoiceRepo.nextNumber)
	}
	if pdfGen.calls != 0 {
		t.Errorf("pdf generator called %d times on a failed commit", pdfGen.calls)
	}
}

func TestCommitInvoiceUnknownProduct(t *testing.T) {
	svc, _, _, _ := newBillingFixture()

	_, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: uuid.New(), Qty: 1}},
	})
	if err == nil {
		t.Fatal("CommitInvoice() expected error for unknown product")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("error code = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestCommitInvoicePDFFailureIsNotFatal(t *testing.T) {
	product := &entity.Product{Name: "Azithromycin", Stock: 20, SaleRate: dec("40")}
	productRepo := newFakeProductRepo(product)
	invoiceRepo := newFakeInvoiceRepo(productRepo)
	pdfGen := &stubPDFGenerator{fail: true}
	svc := NewBillingService(invoiceRepo, productRepo, newFakePartyRepo(), newFakeSettingsRepo(), pdfGen)

	invoice, pdfBytes, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CommitInvoice() error = %v, want nil despite PDF failure", err)
	}
	if invoice.InvoiceNo == "" {
		t.Error("expected a committed invoice number")
	}
	if pdfBytes != nil {
		t.Error("expected nil PDF bytes when rendering fails")
	}
}

func TestCommitInvoiceRateOverride(t *testing.T) {
	product := &entity.Product{Name: "ORS Sachet", Stock: 500, SaleRate: dec("20")}
	svc, _, _, _ := newBillingFixture(product)

	override := dec("15")
	invoice, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 2, Rate: &override}},
	})
	if err != nil {
		t.Fatalf("CommitInvoice() error = %v", err)
	}
	if !invoice.Items[0].Rate.Equal(override) {
		t.Errorf("Rate = %s, want 15", invoice.Items[0].Rate)
	}
	if !invoice.Items[0].TaxableValue.Equal(dec("30")) {
		t.Errorf("TaxableValue = %s, want 30", invoice.Items[0].TaxableValue)
	}
}

func TestPriceCartDoesNotCommit(t *testing.T) {
	product := &entity.Product{Name: "Vitamin C", Stock: 10, SaleRate: dec("8"), GSTRate: dec("18")}
	svc, productRepo, invoiceRepo, _ := newBillingFixture(product)

	items, totals, err := svc.PriceCart(context.Background(), []CartLineInput{
		{ProductID: product.ID, Qty: 3},
	})
	if err != nil {
		t.Fatalf("PriceCart() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !totals.SubTotal.Equal(dec("24")) {
		t.Errorf("SubTotal = %s, want 24", totals.SubTotal)
	}
	if productRepo.products[product.ID].Stock != 10 {
		t.Error("PriceCart must not touch stock")
	}
	if len(invoiceRepo.invoices) != 0 {
		t.Error("PriceCart must not store invoices")
	}
}

func TestCommitInvoiceDefaultsDate(t *testing.T) {
	product := &entity.Product{Name: "Dolo 650", Stock: 10, SaleRate: dec("2")}
	svc, _, _, _ := newBillingFixture(product)

	before := time.Now()
	invoice, _, err := svc.CommitInvoice(context.Background(), &CommitInvoiceInput{
		Type:  enum.BillTypeRetail,
		Items: []CartLineInput{{ProductID: product.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("CommitInvoice() error = %v", err)
	}
	if invoice.Date.Before(before) {
		t.Errorf("Date = %v, expected it to default to now", invoice.Date)
	}
}
