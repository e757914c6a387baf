package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/dto"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service *masterdataapp.MasterDataService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CompanyRequest is the request body for creating or updating a company
type CompanyRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Code          string `json:"code" binding:"required,min=1,max=50"`
	Address       string `json:"address" binding:"max=500"`
	Phone         string `json:"phone" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	GSTIN         string `json:"gstin" binding:"max=15"`
	CurrencyID    string `json:"currency_id" binding:"omitempty,uuid"`
	Active        *bool  `json:"active"`
}

func (r CompanyRequest) fields() (masterdata.CompanyFields, error) {
	var currencyID uuid.UUID
	if r.CurrencyID != "" {
		id, err := uuid.Parse(r.CurrencyID)
		if err != nil {
			return masterdata.CompanyFields{}, err
		}
		currencyID = id
	}
	return masterdata.CompanyFields{
		Name:          r.Name,
		Code:          r.Code,
		Address:       r.Address,
		Phone:         r.Phone,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		GSTIN:         r.GSTIN,
		CurrencyID:    currencyID,
	}, nil
}

// Create creates a company.
func (h *CompanyHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.BadRequest(c, "Invalid currency ID")
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), tenantID, actor, fields)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, company)
}

// Get returns one company.
func (h *CompanyHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	company, err := h.service.GetCompany(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// List returns companies of the tenant, paginated.
func (h *CompanyHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListCompanies(c.Request.Context(), tenantID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a company.
func (h *CompanyHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	fields, err := req.fields()
	if err != nil {
		h.BadRequest(c, "Invalid currency ID")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	company, err := h.service.UpdateCompany(c.Request.Context(), tenantID, id, actor, fields, active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete deletes a company. Companies referenced by documents are protected.
func (h *CompanyHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.service.DeleteCompany(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers company routes on the API group.
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}
