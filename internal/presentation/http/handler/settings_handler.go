package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gopidist/pharma-pos-api/internal/application/service"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/request"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the settings singleton
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateCompany handles updating the company profile
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	var req request.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateCompanyProfile(c.Request.Context(), entity.CompanyProfile{
		Name:    req.Name,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		Phone:   req.Phone,
		Email:   req.Email,
		DLNo1:   req.DLNo1,
		DLNo2:   req.DLNo2,
		Terms:   req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", settings)
}

// GetSequence handles retrieving the invoice numbering sequence
func (h *SettingsHandler) GetSequence(c *gin.Context) {
	seq, err := h.settingsService.GetSequence(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sequence retrieved successfully", seq)
}

// UpdateSequence handles changing the invoice prefix or next number
func (h *SettingsHandler) UpdateSequence(c *gin.Context) {
	var req request.UpdateSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	seq, err := h.settingsService.UpdateSequence(c.Request.Context(), req.Prefix, req.NextNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sequence updated successfully", seq)
}
