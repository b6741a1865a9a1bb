package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LogisticsDetails carries the transport metadata printed on a wholesale bill.
type LogisticsDetails struct {
	Transport   string `gorm:"size:100" json:"transport"`
	VehicleNo   string `gorm:"size:20" json:"vehicle_no"`
	GRNo        string `gorm:"size:50" json:"gr_no"`
	Destination string `gorm:"size:100" json:"destination"`
}

// Invoice is a committed bill. It is created exactly once by the commit
// transaction and never mutated afterwards; party fields are a snapshot
// taken at commit time, not a live link.
type Invoice struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo string     `gorm:"size:50;unique;not null" json:"invoice_no"`
	Date      time.Time  `gorm:"not null;index" json:"date"`
	PartyID   *uuid.UUID `gorm:"type:uuid;index" json:"party_id,omitempty"`

	// Party snapshot
	PartyName    string `gorm:"size:255;not null;index" json:"party_name"`
	PartyAddress string `gorm:"type:text" json:"party_address"`
	PartyGSTIN   string `gorm:"size:20" json:"party_gstin"`

	Type      enum.BillType    `gorm:"default:0" json:"type"`
	Logistics LogisticsDetails `gorm:"embedded;embeddedPrefix:logistics_" json:"logistics"`

	// Derived totals, fixed at commit time. grand_total = round(sub_total +
	// total_gst); round_off is the signed difference.
	SubTotal   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"sub_total"`
	TotalGST   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_gst"`
	RoundOff   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"round_off"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"grand_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Party *Party        `gorm:"foreignKey:PartyID" json:"-"`
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of an invoice. The product fields are copied from
// the product at time of sale. The taxable/CGST/SGST/IGST/total fields are
// always a pure function of qty, rate, discount and GST rate; they are
// recomputed by the billing calculator and never edited independently.
type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	LineNo    int       `gorm:"not null" json:"line_no"`

	// Product snapshot
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Batch       string    `gorm:"size:100" json:"batch"`
	Expiry      time.Time `gorm:"type:date" json:"-"`
	HSN         string    `gorm:"size:20" json:"hsn"`

	Qty             int             `gorm:"not null" json:"qty"`
	FreeQty         int             `gorm:"default:0" json:"free_qty"`
	MRP             decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"mrp"`
	Rate            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"rate"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	GSTRate         decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"gst_rate"`

	// Derived fields. IGST is reserved for interstate billing, which is not
	// implemented; it is always zero.
	TaxableValue decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"taxable_value"`
	CGSTAmount   decimal.Decimal `gorm:"type:decimal(12,3);default:0" json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `gorm:"type:decimal(12,3);default:0" json:"sgst_amount"`
	IGSTAmount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"igst_amount"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON emits the expiry as a plain ISO calendar date.
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		Expiry string `json:"expiry"`
	}{
		Alias:  Alias(it),
		Expiry: it.Expiry.Format("2006-01-02"),
	})
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// StockDelta returns the number of units this line removes from stock.
// Free (bonus) units ship without charge but still leave the shelf.
func (it *InvoiceItem) StockDelta() int {
	return it.Qty + it.FreeQty
}
