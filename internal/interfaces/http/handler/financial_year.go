package handler

import (
	"github.com/gin-gonic/gin"

	calendarapp "github.com/finvoice/backend/internal/application/calendar"
	"github.com/finvoice/backend/internal/interfaces/http/dto"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// FinancialYearHandler handles financial year endpoints. Monthly periods
// are generated by the domain and returned embedded in the year.
type FinancialYearHandler struct {
	BaseHandler
	service *calendarapp.FinancialYearService
}

// NewFinancialYearHandler creates a new FinancialYearHandler
func NewFinancialYearHandler(service *calendarapp.FinancialYearService) *FinancialYearHandler {
	return &FinancialYearHandler{service: service}
}

// Create creates a financial year with generated monthly periods.
func (h *FinancialYearHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var input calendarapp.CreateFinancialYearInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	fy, err := h.service.CreateFinancialYear(c.Request.Context(), tenantID, actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, fy)
}

// Get returns one financial year with its periods.
func (h *FinancialYearHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid financial year ID")
		return
	}

	fy, err := h.service.GetFinancialYear(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fy)
}

// List returns financial years of the tenant, paginated.
func (h *FinancialYearHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListFinancialYears(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a financial year. Changing the dates regenerates periods.
func (h *FinancialYearHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid financial year ID")
		return
	}

	var input calendarapp.UpdateFinancialYearInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	fy, err := h.service.UpdateFinancialYear(c.Request.Context(), tenantID, id, actor, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fy)
}

// Delete deletes a financial year.
func (h *FinancialYearHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid financial year ID")
		return
	}

	if err := h.service.DeleteFinancialYear(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers financial year routes on the API group.
func (h *FinancialYearHandler) RegisterRoutes(rg *gin.RouterGroup) {
	years := rg.Group("/financial-years")
	{
		years.POST("", h.Create)
		years.GET("", h.List)
		years.GET("/:id", h.Get)
		years.PUT("/:id", h.Update)
		years.DELETE("/:id", h.Delete)
	}
}
