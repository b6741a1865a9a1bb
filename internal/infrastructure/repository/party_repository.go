package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	domainRepo "github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db *gorm.DB) domainRepo.PartyRepository {
	return &partyRepository{db: db}
}

func (r *partyRepository) Create(ctx context.Context, party *entity.Party) error {
	return r.db.WithContext(ctx).Create(party).Error
}

func (r *partyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	var party entity.Party
	err := r.db.WithContext(ctx).First(&party, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &party, err
}

func (r *partyRepository) Update(ctx context.Context, party *entity.Party) error {
	return r.db.WithContext(ctx).Save(party).Error
}

func (r *partyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Party{}, "id = ?", id).Error
}

func (r *partyRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Party, int64, error) {
	var parties []entity.Party
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Party{})
	if search != "" {
		query = query.Where("name ILIKE ? OR gstin ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("name ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&parties).Error

	return parties, total, err
}
