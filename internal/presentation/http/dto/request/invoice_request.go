package request

import "github.com/google/uuid"

// CartLineRequest is one line of a cart being priced or committed
type CartLineRequest struct {
	ProductID       uuid.UUID `json:"product_id" binding:"required"`
	Qty             int       `json:"qty" binding:"min=0"`
	FreeQty         int       `json:"free_qty" binding:"min=0"`
	Rate            *float64  `json:"rate" binding:"omitempty,min=0"`
	DiscountPercent float64   `json:"discount_percent" binding:"min=0,max=100"`
}

// CommitInvoiceRequest represents an invoice commit request
type CommitInvoiceRequest struct {
	Date      string            `json:"date"`
	PartyID   *uuid.UUID        `json:"party_id"`
	Type      int               `json:"type" binding:"min=0,max=1"`
	Logistics LogisticsRequest  `json:"logistics"`
	Items     []CartLineRequest `json:"items" binding:"required,dive"`
}

// LogisticsRequest carries transport details for wholesale bills
type LogisticsRequest struct {
	Transport   string `json:"transport" binding:"omitempty,max=100"`
	VehicleNo   string `json:"vehicle_no" binding:"omitempty,max=20"`
	GRNo        string `json:"gr_no" binding:"omitempty,max=50"`
	Destination string `json:"destination" binding:"omitempty,max=100"`
}

// PriceCartRequest represents a cart pricing preview request
type PriceCartRequest struct {
	Items []CartLineRequest `json:"items" binding:"required,dive"`
}
