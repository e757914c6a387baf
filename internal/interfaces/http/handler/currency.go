package handler

import (
	"github.com/gin-gonic/gin"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/dto"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// CurrencyHandler handles currency endpoints. Currencies are tenant level,
// shared by all companies.
type CurrencyHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewCurrencyHandler creates a new CurrencyHandler
func NewCurrencyHandler(service *masterdataapp.MasterDataService) *CurrencyHandler {
	return &CurrencyHandler{service: service}
}

// CurrencyRequest is the request body for creating or updating a currency
type CurrencyRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Code   string `json:"code" binding:"required,min=3,max=3,alpha"`
	Symbol string `json:"symbol" binding:"max=10"`
	Active *bool  `json:"active"`
}

// Create creates a currency.
func (h *CurrencyHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	currency, err := h.service.CreateCurrency(c.Request.Context(), tenantID, actor, req.Name, req.Code, req.Symbol)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, currency)
}

// Get returns one currency.
func (h *CurrencyHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid currency ID")
		return
	}

	currency, err := h.service.GetCurrency(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, currency)
}

// List returns all currencies of the tenant.
func (h *CurrencyHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	currencies, err := h.service.ListCurrencies(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, currencies)
}

// Update updates a currency.
func (h *CurrencyHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid currency ID")
		return
	}

	var req CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	currency, err := h.service.UpdateCurrency(c.Request.Context(), tenantID, id, actor, req.Name, req.Code, req.Symbol, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, currency)
}

// Delete deletes a currency unless documents reference it.
func (h *CurrencyHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid currency ID")
		return
	}

	if err := h.service.DeleteCurrency(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers currency routes on the API group.
func (h *CurrencyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.Create)
		currencies.GET("", h.List)
		currencies.GET("/:id", h.Get)
		currencies.PUT("/:id", h.Update)
		currencies.DELETE("/:id", h.Delete)
	}
}
