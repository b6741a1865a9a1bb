package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Party represents a buyer: a wholesale account or a retail walk-in
// customer. Parties are immutable during billing; invoices keep their own
// snapshot of the fields they need.
type Party struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null;index" json:"name"`
	Type      enum.BillType  `gorm:"default:0" json:"type"`
	GSTIN     string         `gorm:"size:20;index" json:"gstin"`
	Address   string         `gorm:"type:text" json:"address"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Email     string         `gorm:"size:255" json:"email"`
	StateCode string         `gorm:"size:5" json:"state_code"`
	DLNo1     string         `gorm:"size:50" json:"dl_no_1"`
	DLNo2     string         `gorm:"size:50" json:"dl_no_2"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Optional credit terms
	CreditLimit      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"credit_limit"`
	CurrentBalance   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"current_balance"`
	PaymentTermsDays int             `gorm:"default:0" json:"payment_terms_days"`
}

// BeforeCreate generates a UUID before creating a new party
func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Party model
func (Party) TableName() string {
	return "parties"
}
