package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/application/service"
	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/enum"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/request"
	"github.com/gopidist/pharma-pos-api/internal/presentation/http/dto/response"
)

// suggestLimit caps the billing screen's autocomplete dropdown.
const suggestLimit = 10

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	importService  *service.ImportService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, importService *service.ImportService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		importService:  importService,
	}
}

// List handles listing and searching products. With an empty query it
// returns the full catalogue.
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	products, err := h.productService.Search(c.Request.Context(), req.Query, enum.ParseSearchMode(req.Mode), req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Suggest handles the billing autocomplete: a capped fast search that
// escalates on poor matches.
func (h *ProductHandler) Suggest(c *gin.Context) {
	var req request.ProductSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	products, err := h.productService.Search(c.Request.Context(), req.Query, enum.ParseSearchMode(req.Mode), suggestLimit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Suggestions retrieved successfully", products)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product := &entity.Product{
		Name:         req.Name,
		Batch:        req.Batch,
		Expiry:       parseDate(req.Expiry),
		HSN:          req.HSN,
		GSTRate:      decimal.NewFromFloat(req.GSTRate),
		MRP:          decimal.NewFromFloat(req.MRP),
		PurchaseRate: decimal.NewFromFloat(req.PurchaseRate),
		SaleRate:     decimal.NewFromFloat(req.SaleRate),
		Stock:        req.Stock,
		Manufacturer: req.Manufacturer,
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Batch != nil {
		product.Batch = *req.Batch
	}
	if req.Expiry != nil {
		product.Expiry = parseDate(*req.Expiry)
	}
	if req.HSN != nil {
		product.HSN = *req.HSN
	}
	if req.GSTRate != nil {
		product.GSTRate = decimal.NewFromFloat(*req.GSTRate)
	}
	if req.MRP != nil {
		product.MRP = decimal.NewFromFloat(*req.MRP)
	}
	if req.PurchaseRate != nil {
		product.PurchaseRate = decimal.NewFromFloat(*req.PurchaseRate)
	}
	if req.SaleRate != nil {
		product.SaleRate = decimal.NewFromFloat(*req.SaleRate)
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Manufacturer != nil {
		product.Manufacturer = *req.Manufacturer
	}

	product, err = h.productService.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// Import handles a spreadsheet upload of products
func (h *ProductHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "A spreadsheet file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not open the uploaded file")
		return
	}
	defer file.Close()

	count, err := h.importService.ImportProducts(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Products imported successfully", gin.H{"imported": count})
}

// parseDate accepts an ISO calendar date; anything else is a zero time.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}
