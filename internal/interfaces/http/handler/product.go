package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(service *masterdataapp.MasterDataService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductRequest is the request body for creating or updating a product
type ProductRequest struct {
	CompanyID     string          `json:"company_id" binding:"required,uuid"`
	Code          string          `json:"code" binding:"required,min=1,max=50"`
	Name          string          `json:"name" binding:"required,min=1,max=200"`
	Specification string          `json:"specification" binding:"max=500"`
	SellingUOMID  string          `json:"selling_uom_id" binding:"required,uuid"`
	PurchaseUOMID string          `json:"purchase_uom_id" binding:"omitempty,uuid"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	HSNCode       string          `json:"hsn_code" binding:"max=8"`
	TaxHeaderID   string          `json:"tax_header_id" binding:"omitempty,uuid"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Active        *bool           `json:"active"`
}

func (r ProductRequest) fields() (masterdata.ProductFields, error) {
	sellingUOM, err := uuid.Parse(r.SellingUOMID)
	if err != nil {
		return masterdata.ProductFields{}, err
	}
	purchaseUOM, err := parseUUIDField(r.PurchaseUOMID)
	if err != nil {
		return masterdata.ProductFields{}, err
	}
	taxHeaderID, err := parseUUIDField(r.TaxHeaderID)
	if err != nil {
		return masterdata.ProductFields{}, err
	}
	return masterdata.ProductFields{
		Code:          r.Code,
		Name:          r.Name,
		Specification: r.Specification,
		SellingUOMID:  sellingUOM,
		PurchaseUOMID: purchaseUOM,
		SellingPrice:  r.SellingPrice,
		CostPrice:     r.CostPrice,
		HSNCode:       r.HSNCode,
		TaxHeaderID:   taxHeaderID,
		TaxRate:       r.TaxRate,
	}, nil
}

// Create creates a product under a company.
func (h *ProductHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.BadRequest(c, "Invalid reference ID in request")
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), tenantID, actor, companyID, fields)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Get returns one product.
func (h *ProductHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns products of one company, paginated.
func (h *ProductHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListProducts(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a product.
func (h *ProductHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.BadRequest(c, "Invalid reference ID in request")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), tenantID, id, actor, fields, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete deletes a product unless invoice lines reference it.
func (h *ProductHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers product routes on the API group.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
