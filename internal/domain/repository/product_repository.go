package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
)

// ProductRepository defines product persistence operations.
// SearchPrefix is the index-backed scan behind FAST search; GetAll feeds
// the in-memory ACCURATE scan. Stock is never mutated here; only the
// invoice commit transaction touches it.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SearchPrefix returns products whose name or batch starts with query,
	// case-insensitively, ordered by name. limit <= 0 means unbounded.
	SearchPrefix(ctx context.Context, query string, limit int) ([]entity.Product, error)

	// GetAll returns the full collection in stable iteration order.
	GetAll(ctx context.Context) ([]entity.Product, error)

	// BulkInsert inserts imported products in one batch.
	BulkInsert(ctx context.Context, products []entity.Product) error

	Count(ctx context.Context) (int64, error)
	CountExpiringBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
