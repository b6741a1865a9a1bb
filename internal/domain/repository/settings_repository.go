package repository

import (
	"context"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
)

// SettingsRepository manages the singleton company profile and the invoice
// sequence. The sequence exposed here is read/administered outside commits;
// advancing it during a commit happens inside the invoice repository's
// transaction only.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*entity.AppSettings, error)
	UpdateSettings(ctx context.Context, settings *entity.AppSettings) error

	GetSequence(ctx context.Context) (*entity.InvoiceSequence, error)
	UpdateSequence(ctx context.Context, seq *entity.InvoiceSequence) error
}
