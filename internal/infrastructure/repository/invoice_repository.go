package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	domainRepo "github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateWithStockAndSequence commits an invoice in a single transaction.
// The sequence row is locked FOR UPDATE for the duration, so concurrent
// commits serialize on it and each one observes a distinct number. Stock
// decrements are guarded (stock >= needed); any shortfall rolls back the
// whole commit and surfaces as InsufficientStockError.
func (r *invoiceRepository) CreateWithStockAndSequence(ctx context.Context, invoice *entity.Invoice) error {
	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq entity.InvoiceSequence
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&seq).Error; err != nil {
			return fmt.Errorf("failed to lock invoice sequence: %w", err)
		}

		invoice.InvoiceNo = fmt.Sprintf("%s-%d", seq.Prefix, seq.NextNumber)

		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		for _, item := range invoice.Items {
			needed := item.StockDelta()
			if needed == 0 {
				continue
			}
			result := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, needed).
				Update("stock", gorm.Expr("stock - ?", needed))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, item.ProductID)
			}
		}

		// Any shortfall rolls back the invoice and all decrements
		if len(failedIDs) > 0 {
			return gorm.ErrInvalidTransaction
		}

		return tx.Model(&seq).
			Update("next_number", gorm.Expr("next_number + 1")).Error
	})

	if errors.Is(err, gorm.ErrInvalidTransaction) && len(failedIDs) > 0 {
		return &domainRepo.InsufficientStockError{ProductIDs: failedIDs}
	}
	return err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_items.line_no ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})
	if search != "" {
		query = query.Where("invoice_no ILIKE ? OR party_name ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("date DESC, created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total decimal.Decimal
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(grand_total), 0) AS total, COUNT(*) AS count").
		Where("date >= ?", since).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	return row.Total, row.Count, nil
}
