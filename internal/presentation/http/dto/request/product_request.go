package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Batch        string  `json:"batch" binding:"omitempty,max=100"`
	Expiry       string  `json:"expiry" binding:"omitempty"`
	HSN          string  `json:"hsn" binding:"omitempty,max=20"`
	GSTRate      float64 `json:"gst_rate" binding:"min=0,max=100"`
	MRP          float64 `json:"mrp" binding:"min=0"`
	PurchaseRate float64 `json:"purchase_rate" binding:"min=0"`
	SaleRate     float64 `json:"sale_rate" binding:"min=0"`
	Stock        int     `json:"stock" binding:"min=0"`
	Manufacturer string  `json:"manufacturer" binding:"omitempty,max=255"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Batch        *string  `json:"batch" binding:"omitempty,max=100"`
	Expiry       *string  `json:"expiry"`
	HSN          *string  `json:"hsn" binding:"omitempty,max=20"`
	GSTRate      *float64 `json:"gst_rate" binding:"omitempty,min=0,max=100"`
	MRP          *float64 `json:"mrp" binding:"omitempty,min=0"`
	PurchaseRate *float64 `json:"purchase_rate" binding:"omitempty,min=0"`
	SaleRate     *float64 `json:"sale_rate" binding:"omitempty,min=0"`
	Stock        *int     `json:"stock" binding:"omitempty,min=0"`
	Manufacturer *string  `json:"manufacturer" binding:"omitempty,max=255"`
}

// ProductSearchRequest represents product search parameters
type ProductSearchRequest struct {
	Query string `form:"q"`
	Mode  string `form:"mode"`
	Limit int    `form:"limit" binding:"omitempty,min=0,max=100"`
}
