package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// InsufficientStockError reports lines whose stock decrement could not be
// satisfied. The whole commit is rolled back when it occurs.
type InsufficientStockError struct {
	ProductIDs []uuid.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %d product(s)", len(e.ProductIDs))
}

// InvoiceRepository defines invoice persistence operations
type InvoiceRepository interface {
	// CreateWithStockAndSequence commits an invoice as one atomic unit:
	// it locks the invoice sequence row, assigns invoice.InvoiceNo from it,
	// persists the invoice with its items, decrements each referenced
	// product's stock by qty+freeQty, and advances the sequence. Either all
	// of these writes become durable or none do.
	CreateWithStockAndSequence(ctx context.Context, invoice *entity.Invoice) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Invoice, int64, error)

	// SalesSince reports the grand-total sum and count of invoices dated at
	// or after the given instant.
	SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, int64, error)
}
