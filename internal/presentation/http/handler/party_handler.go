package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/application/service"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/request"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/response"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// PartyHandler handles party-related HTTP requests
type PartyHandler struct {
	partyService *service.PartyService
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(partyService *service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// List handles listing parties with pagination and search
func (h *PartyHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.partyService.ListParties(c.Request.Context(), &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Parties retrieved successfully", result)
}

// Get handles retrieving a single party
func (h *PartyHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	party, err := h.partyService.GetParty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party retrieved successfully", party)
}

// Create handles party creation
func (h *PartyHandler) Create(c *gin.Context) {
	var req request.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	party := &entity.Party{
		Name:             req.Name,
		Type:             enum.BillType(req.Type),
		GSTIN:            req.GSTIN,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		StateCode:        req.StateCode,
		DLNo1:            req.DLNo1,
		DLNo2:            req.DLNo2,
		CreditLimit:      decimal.NewFromFloat(req.CreditLimit),
		PaymentTermsDays: req.PaymentTermsDays,
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), party)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Party created successfully", party)
}

// Update handles party updates
func (h *PartyHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	party, err := h.partyService.GetParty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Type != nil {
		party.Type = enum.BillType(*req.Type)
	}
	if req.GSTIN != nil {
		party.GSTIN = *req.GSTIN
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.StateCode != nil {
		party.StateCode = *req.StateCode
	}
	if req.DLNo1 != nil {
		party.DLNo1 = *req.DLNo1
	}
	if req.DLNo2 != nil {
		party.DLNo2 = *req.DLNo2
	}
	if req.CreditLimit != nil {
		party.CreditLimit = decimal.NewFromFloat(*req.CreditLimit)
	}
	if req.PaymentTermsDays != nil {
		party.PaymentTermsDays = *req.PaymentTermsDays
	}

	party, err = h.partyService.UpdateParty(c.Request.Context(), party)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party updated successfully", party)
}

// Delete handles party deletion
func (h *PartyHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party deleted successfully", nil)
}
