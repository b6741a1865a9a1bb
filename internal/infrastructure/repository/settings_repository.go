package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	domainRepo "github.com/gopidist/pharma-pos-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (*entity.AppSettings, error) {
	var settings entity.AppSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) UpdateSettings(ctx context.Context, settings *entity.AppSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) GetSequence(ctx context.Context) (*entity.InvoiceSequence, error) {
	var seq entity.InvoiceSequence
	err := r.db.WithContext(ctx).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &seq, err
}

func (r *settingsRepository) UpdateSequence(ctx context.Context, seq *entity.InvoiceSequence) error {
	return r.db.WithContext(ctx).Save(seq).Error
}
