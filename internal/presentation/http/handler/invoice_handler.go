package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/application/service"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/request"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/response"
	"github.com/gopidist/pharma-pos-api/pkg/pagination"
)

// InvoiceHandler handles billing HTTP requests
type InvoiceHandler struct {
	billingService *service.BillingService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(billingService *service.BillingService) *InvoiceHandler {
	return &InvoiceHandler{billingService: billingService}
}

// PriceCart handles a cart pricing preview without committing
func (h *InvoiceHandler) PriceCart(c *gin.Context) {
	var req request.PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items, totals, err := h.billingService.PriceCart(c.Request.Context(), toCartLines(req.Items))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart priced successfully", gin.H{
		"items":  items,
		"totals": totals,
	})
}

// Commit handles the atomic invoice commit
func (h *InvoiceHandler) Commit(c *gin.Context) {
	var req request.CommitInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CommitInvoiceInput{
		PartyID: req.PartyID,
		Type:    enum.BillType(req.Type),
		Logistics: entity.LogisticsDetails{
			Transport:   req.Logistics.Transport,
			VehicleNo:   req.Logistics.VehicleNo,
			GRNo:        req.Logistics.GRNo,
			Destination: req.Logistics.Destination,
		},
		Items: toCartLines(req.Items),
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		input.Date = date
	}

	invoice, _, err := h.billingService.CommitInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice committed successfully", invoice)
}

// List handles listing invoices with pagination and search
func (h *InvoiceHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.billingService.ListInvoices(c.Request.Context(), &params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles retrieving a single invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// PDF streams the invoice rendered as a PDF document
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pdfBytes, invoiceNo, err := h.billingService.GetInvoicePDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoiceNo))
	c.Data(200, "application/pdf", pdfBytes)
}

func toCartLines(items []request.CartLineRequest) []service.CartLineInput {
	lines := make([]service.CartLineInput, len(items))
	for i, item := range items {
		lines[i] = service.CartLineInput{
			ProductID:       item.ProductID,
			Qty:             item.Qty,
			FreeQty:         item.FreeQty,
			DiscountPercent: decimal.NewFromFloat(item.DiscountPercent),
		}
		if item.Rate != nil {
			rate := decimal.NewFromFloat(*item.Rate)
			lines[i].Rate = &rate
		}
	}
	return lines
}
