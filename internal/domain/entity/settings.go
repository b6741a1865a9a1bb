package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile holds the seller identity printed on invoices.
type CompanyProfile struct {
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	GSTIN   string `gorm:"size:20" json:"gstin"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:255" json:"email"`
	DLNo1   string `gorm:"size:50" json:"dl_no_1"`
	DLNo2   string `gorm:"size:50" json:"dl_no_2"`
	Terms   string `gorm:"type:text" json:"terms"`
}

// AppSettings is a singleton record holding the company profile.
type AppSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Company   CompanyProfile `gorm:"embedded;embeddedPrefix:company_" json:"company"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating settings
func (s *AppSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AppSettings model
func (AppSettings) TableName() string {
	return "app_settings"
}

// InvoiceSequence is the singleton counter behind invoice numbering.
// Each committed invoice consumes exactly one NextNumber value; the commit
// transaction locks this row so no two commits can observe the same value.
type InvoiceSequence struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Prefix     string    `gorm:"size:10;not null" json:"prefix"`
	NextNumber int64     `gorm:"not null" json:"next_number"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the sequence row
func (s *InvoiceSequence) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
