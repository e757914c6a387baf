package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// UOMHandler handles unit-of-measure endpoints.
type UOMHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewUOMHandler creates a new UOMHandler
func NewUOMHandler(service *masterdataapp.MasterDataService) *UOMHandler {
	return &UOMHandler{service: service}
}

// UOMRequest is the request body for creating or updating a unit of measure
type UOMRequest struct {
	CompanyID string `json:"company_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=1,max=100"`
	Code      string `json:"code" binding:"required,min=1,max=20"`
	Active    *bool  `json:"active"`
}

// Create creates a unit of measure under a company.
func (h *UOMHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req UOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	uom, err := h.service.CreateUOM(c.Request.Context(), tenantID, actor, companyID, req.Name, req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, uom)
}

// Get returns one unit of measure.
func (h *UOMHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid UOM ID")
		return
	}

	uom, err := h.service.GetUOM(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, uom)
}

// List returns units of measure of one company.
func (h *UOMHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	uoms, err := h.service.ListUOMs(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, uoms)
}

// Update updates a unit of measure.
func (h *UOMHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid UOM ID")
		return
	}

	var req UOMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	uom, err := h.service.UpdateUOM(c.Request.Context(), tenantID, id, actor, req.Name, req.Code, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, uom)
}

// Delete deletes a unit of measure unless products or lines reference it.
func (h *UOMHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid UOM ID")
		return
	}

	if err := h.service.DeleteUOM(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers UOM routes on the API group.
func (h *UOMHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uoms := rg.Group("/uoms")
	{
		uoms.POST("", h.Create)
		uoms.GET("", h.List)
		uoms.GET("/:id", h.Get)
		uoms.PUT("/:id", h.Update)
		uoms.DELETE("/:id", h.Delete)
	}
}
