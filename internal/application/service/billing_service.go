package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/billing"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// InvoicePDFGenerator renders a committed invoice for printing.
type InvoicePDFGenerator interface {
	Generate(inv *entity.Invoice, company entity.CompanyProfile) ([]byte, error)
}

// BillingService handles cart pricing and the invoice commit flow
type BillingService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	partyRepo    repository.PartyRepository
	settingsRepo repository.SettingsRepository
	pdfGen       InvoicePDFGenerator
}

// NewBillingService creates a new billing service
func NewBillingService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	partyRepo repository.PartyRepository,
	settingsRepo repository.SettingsRepository,
	pdfGen InvoicePDFGenerator,
) *BillingService {
	return &BillingService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		partyRepo:    partyRepo,
		settingsRepo: settingsRepo,
		pdfGen:       pdfGen,
	}
}

// CartLineInput is one line of a cart about to be committed. Rate overrides
// the product's sale rate when set.
type CartLineInput struct {
	ProductID       uuid.UUID
	Qty             int
	FreeQty         int
	Rate            *decimal.Decimal
	DiscountPercent decimal.Decimal
}

// CommitInvoiceInput represents the commit invoice input
type CommitInvoiceInput struct {
	Date      time.Time
	PartyID   *uuid.UUID
	Type      enum.BillType
	Logistics entity.LogisticsDetails
	Items     []CartLineInput
}

// PriceCart computes a priced preview of a cart without committing anything.
// The billing screen calls this on every cart change.
func (s *BillingService) PriceCart(ctx context.Context, lines []CartLineInput) ([]entity.InvoiceItem, *billing.Totals, error) {
	items, err := s.buildItems(ctx, lines)
	if err != nil {
		return nil, nil, err
	}
	totals := billing.ComputeTotals(items)
	return items, &totals, nil
}

// CommitInvoice validates the cart, prices every line, and hands the invoice
// to the repository's atomic commit. Validation failures surface before any
// write happens. PDF generation afterwards is best effort: a render failure
// is logged, not returned, because the invoice is already durable.
func (s *BillingService) CommitInvoice(ctx context.Context, input *CommitInvoiceInput) (*entity.Invoice, []byte, error) {
	if len(input.Items) == 0 {
		return nil, nil, apperror.ErrEmptyCart
	}
	if input.Type == enum.BillTypeWholesale && input.PartyID == nil {
		return nil, nil, apperror.ErrPartyRequired
	}

	invoice := &entity.Invoice{
		Date:      input.Date,
		Type:      input.Type,
		Logistics: input.Logistics,
	}
	if invoice.Date.IsZero() {
		invoice.Date = time.Now()
	}

	if input.PartyID != nil {
		party, err := s.partyRepo.GetByID(ctx, *input.PartyID)
		if err != nil {
			return nil, nil, err
		}
		if party == nil {
			return nil, nil, apperror.NewNotFoundError("Party")
		}
		invoice.PartyID = &party.ID
		invoice.PartyName = party.Name
		invoice.PartyAddress = party.Address
		invoice.PartyGSTIN = party.GSTIN
	} else {
		invoice.PartyName = "Cash Sale"
	}

	items, err := s.buildItems(ctx, input.Items)
	if err != nil {
		return nil, nil, err
	}
	invoice.Items = items

	totals := billing.ComputeTotals(items)
	invoice.SubTotal = totals.SubTotal
	invoice.TotalGST = totals.TotalGST
	invoice.RoundOff = totals.RoundOff
	invoice.GrandTotal = totals.GrandTotal

	if err := s.invoiceRepo.CreateWithStockAndSequence(ctx, invoice); err != nil {
		if stockErr, ok := err.(*repository.InsufficientStockError); ok {
			return nil, nil, apperror.NewBadRequestError(
				fmt.Sprintf("Insufficient stock for %d product(s)", len(stockErr.ProductIDs)))
		}
		return nil, nil, err
	}

	var pdfBytes []byte
	if s.pdfGen != nil {
		pdfBytes, err = s.renderPDF(ctx, invoice)
		if err != nil {
			log.Printf("Warning: failed to generate PDF for invoice %s: %v", invoice.InvoiceNo, err)
			pdfBytes = nil
		}
	}

	return invoice, pdfBytes, nil
}

// GetInvoice retrieves an invoice with its items
func (s *BillingService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices retrieves invoices with pagination and optional search on
// invoice number or party name
func (s *BillingService) ListInvoices(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Invoice], error) {
	params.Validate()

	invoices, total, err := s.invoiceRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(invoices, p), nil
}

// GetInvoicePDF re-renders the PDF for a committed invoice on demand.
func (s *BillingService) GetInvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	if s.pdfGen == nil {
		return nil, "", apperror.NewAppError(501, "PDF generation is not configured")
	}
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := s.renderPDF(ctx, invoice)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, invoice.InvoiceNo, nil
}

func (s *BillingService) renderPDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error) {
	var company entity.CompanyProfile
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		company = settings.Company
	}
	return s.pdfGen.Generate(invoice, company)
}

// buildItems batch-fetches the referenced products, snapshots them into
// invoice items and prices every line.
func (s *BillingService) buildItems(ctx context.Context, lines []CartLineInput) ([]entity.InvoiceItem, error) {
	productIDs := make([]uuid.UUID, len(lines))
	for i, line := range lines {
		productIDs[i] = line.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	items := make([]entity.InvoiceItem, 0, len(lines))
	for i, line := range lines {
		product, exists := productMap[line.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", line.ProductID))
		}

		rate := product.SaleRate
		if line.Rate != nil {
			rate = *line.Rate
		}

		item := entity.InvoiceItem{
			LineNo:          i + 1,
			ProductID:       product.ID,
			ProductName:     product.Name,
			Batch:           product.Batch,
			Expiry:          product.Expiry,
			HSN:             product.HSN,
			Qty:             line.Qty,
			FreeQty:         line.FreeQty,
			MRP:             product.MRP,
			Rate:            rate,
			DiscountPercent: line.DiscountPercent,
			GSTRate:         product.GSTRate,
		}

		item, err = billing.ComputeLine(item)
		if err != nil {
			return nil, apperror.NewBadRequestError(
				fmt.Sprintf("Line %d: %s", i+1, err.Error()))
		}
		items = append(items, item)
	}

	return items, nil
}
