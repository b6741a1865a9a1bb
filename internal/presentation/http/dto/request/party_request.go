package request

// CreatePartyRequest represents a party creation request
type CreatePartyRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Type             int     `json:"type" binding:"min=0,max=1"`
	GSTIN            string  `json:"gstin" binding:"omitempty,max=20"`
	Address          string  `json:"address"`
	Phone            string  `json:"phone" binding:"omitempty,max=20"`
	Email            string  `json:"email" binding:"omitempty,email"`
	StateCode        string  `json:"state_code" binding:"omitempty,max=5"`
	DLNo1            string  `json:"dl_no_1" binding:"omitempty,max=50"`
	DLNo2            string  `json:"dl_no_2" binding:"omitempty,max=50"`
	CreditLimit      float64 `json:"credit_limit" binding:"min=0"`
	PaymentTermsDays int     `json:"payment_terms_days" binding:"min=0"`
}

// UpdatePartyRequest represents a party update request
type UpdatePartyRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Type             *int     `json:"type" binding:"omitempty,min=0,max=1"`
	GSTIN            *string  `json:"gstin" binding:"omitempty,max=20"`
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone" binding:"omitempty,max=20"`
	Email            *string  `json:"email" binding:"omitempty,email"`
	StateCode        *string  `json:"state_code" binding:"omitempty,max=5"`
	DLNo1            *string  `json:"dl_no_1" binding:"omitempty,max=50"`
	DLNo2            *string  `json:"dl_no_2" binding:"omitempty,max=50"`
	CreditLimit      *float64 `json:"credit_limit" binding:"omitempty,min=0"`
	PaymentTermsDays *int     `json:"payment_terms_days" binding:"omitempty,min=0"`
}
