package service

import (
	"context"
	"strings"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
)

// SettingsService manages the company profile and invoice numbering
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the settings singleton
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.AppSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateCompanyProfile replaces the company profile on the singleton.
func (s *SettingsService) UpdateCompanyProfile(ctx context.Context, company entity.CompanyProfile) (*entity.AppSettings, error) {
	if strings.TrimSpace(company.Name) == "" {
		return nil, apperror.NewBadRequestError("Company name is required")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.Company = company

	if err := s.settingsRepo.UpdateSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetSequence retrieves the invoice numbering sequence
func (s *SettingsService) GetSequence(ctx context.Context) (*entity.InvoiceSequence, error) {
	seq, err := s.settingsRepo.GetSequence(ctx)
	if err != nil {
		return nil, err
	}
	if seq == nil {
		return nil, apperror.NewNotFoundError("Invoice sequence")
	}
	return seq, nil
}

// UpdateSequence changes the prefix or the next number. Lowering the next
// number below its current value is rejected: committed numbers are never
// reissued.
func (s *SettingsService) UpdateSequence(ctx context.Context, prefix string, nextNumber int64) (*entity.InvoiceSequence, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, apperror.NewBadRequestError("Invoice prefix is required")
	}

	seq, err := s.GetSequence(ctx)
	if err != nil {
		return nil, err
	}
	if nextNumber < seq.NextNumber {
		return nil, apperror.NewBadRequestError("Next number cannot move backwards")
	}

	seq.Prefix = prefix
	seq.NextNumber = nextNumber
	if err := s.settingsRepo.UpdateSequence(ctx, seq); err != nil {
		return nil, err
	}
	return seq, nil
}
