package request

// UpdateCompanyRequest represents a company profile update request
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin" binding:"omitempty,max=20"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Email   string `json:"email" binding:"omitempty,email"`
	DLNo1   string `json:"dl_no_1" binding:"omitempty,max=50"`
	DLNo2   string `json:"dl_no_2" binding:"omitempty,max=50"`
	Terms   string `json:"terms"`
}

// UpdateSequenceRequest represents an invoice sequence update request
type UpdateSequenceRequest struct {
	Prefix     string `json:"prefix" binding:"required,max=10"`
	NextNumber int64  `json:"next_number" binding:"min=1"`
}
