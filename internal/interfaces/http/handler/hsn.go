package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// HSNHandler handles HSN code endpoints.
type HSNHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewHSNHandler creates a new HSNHandler
func NewHSNHandler(service *masterdataapp.MasterDataService) *HSNHandler {
	return &HSNHandler{service: service}
}

// HSNRequest is the request body for creating or updating an HSN record
type HSNRequest struct {
	CompanyID     string          `json:"company_id" binding:"required,uuid"`
	Code          string          `json:"code" binding:"required,min=2,max=8"`
	Description   string          `json:"description" binding:"max=500"`
	TaxHeaderID   string          `json:"tax_header_id" binding:"required,uuid"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	EffectiveDate time.Time       `json:"effective_date" binding:"required"`
	Active        *bool           `json:"active"`
}

func (r HSNRequest) fields() (masterdata.HSNFields, error) {
	taxHeaderID, err := uuid.Parse(r.TaxHeaderID)
	if err != nil {
		return masterdata.HSNFields{}, err
	}
	return masterdata.HSNFields{
		Code:          r.Code,
		Description:   r.Description,
		TaxHeaderID:   taxHeaderID,
		TaxRate:       r.TaxRate,
		EffectiveDate: r.EffectiveDate,
	}, nil
}

// Create creates an HSN record under a company.
func (h *HSNHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req HSNRequest
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
		h.BadRequest(c, "Invalid tax header ID")
		return
	}

	hsn, err := h.service.CreateHSN(c.Request.Context(), tenantID, actor, companyID, fields)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, hsn)
}

// Get returns one HSN record.
func (h *HSNHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid HSN ID")
		return
	}

	hsn, err := h.service.GetHSN(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hsn)
}

// List returns HSN records of one company.
func (h *HSNHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	hsns, err := h.service.ListHSNs(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hsns)
}

// Update updates an HSN record.
func (h *HSNHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid HSN ID")
		return
	}

	var req HSNRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.BadRequest(c, "Invalid tax header ID")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	hsn, err := h.service.UpdateHSN(c.Request.Context(), tenantID, id, actor, fields, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, hsn)
}

// Delete deletes an HSN record.
func (h *HSNHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid HSN ID")
		return
	}

	if err := h.service.DeleteHSN(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers HSN routes on the API group.
func (h *HSNHandler) RegisterRoutes(rg *gin.RouterGroup) {
	hsns := rg.Group("/hsn")
	{
		hsns.POST("", h.Create)
		hsns.GET("", h.List)
		hsns.GET("/:id", h.Get)
		hsns.PUT("/:id", h.Update)
		hsns.DELETE("/:id", h.Delete)
	}
}
