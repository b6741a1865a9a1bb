package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a pharmaceutical product in the inventory.
// Stock is only ever decremented by an invoice commit; search reads it
// but never mutates it.
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name         string          `gorm:"size:255;not null;index" json:"name"`
	Batch        string          `gorm:"size:100;not null;index" json:"batch"`
	Expiry       time.Time       `gorm:"type:date" json:"-"`
	HSN          string          `gorm:"size:20" json:"hsn"`
	GSTRate      decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`
	MRP          decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"mrp"`
	PurchaseRate decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"purchase_rate"`
	SaleRate     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"sale_rate"`
	Stock        int             `gorm:"default:0;check:stock >= 0" json:"stock"`
	Manufacturer string          `gorm:"size:255" json:"manufacturer"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// MarshalJSON emits the expiry as a plain ISO calendar date.
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Expiry string `json:"expiry"`
	}{
		Alias:  Alias(p),
		Expiry: p.Expiry.Format("2006-01-02"),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
