package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// PartyRepository defines party persistence operations
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Party, error)
	Update(ctx context.Context, party *entity.Party) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Party, int64, error)
}
