package handler

import (
	"github.com/gin-gonic/gin"

	taxapp "github.com/finvoice/backend/internal/application/tax"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// TaxHandler handles tax header endpoints. Slabs are generated by the
// domain from the header rate and returned embedded in the header.
type TaxHandler struct {
	BaseHandler
	service *taxapp.TaxService
}

// NewTaxHandler creates a new TaxHandler
func NewTaxHandler(service *taxapp.TaxService) *TaxHandler {
	return &TaxHandler{service: service}
}

// Create creates a tax header with generated slabs.
func (h *TaxHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var input taxapp.TaxHeaderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	header, err := h.service.CreateTaxHeader(c.Request.Context(), tenantID, actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, header)
}

// Get returns one tax header with its slabs.
func (h *TaxHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid tax header ID")
		return
	}

	header, err := h.service.GetTaxHeader(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, header)
}

// List returns tax headers of one company, paginated.
func (h *TaxHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListTaxHeaders(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a tax header and regenerates its slabs.
func (h *TaxHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid tax header ID")
		return
	}

	var input taxapp.TaxHeaderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	header, err := h.service.UpdateTaxHeader(c.Request.Context(), tenantID, id, actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, header)
}

// Delete deletes a tax header unless products or lines reference it.
func (h *TaxHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid tax header ID")
		return
	}

	if err := h.service.DeleteTaxHeader(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers tax routes on the API group.
func (h *TaxHandler) RegisterRoutes(rg *gin.RouterGroup) {
	taxes := rg.Group("/taxes")
	{
		taxes.POST("", h.Create)
		taxes.GET("", h.List)
		taxes.GET("/:id", h.Get)
		taxes.PUT("/:id", h.Update)
		taxes.DELETE("/:id", h.Delete)
	}
}
