package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	masterdataapp "github.com/finvoice/backend/internal/application/masterdata"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	BaseHandler
	service *masterdataapp.MasterDataService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *masterdataapp.MasterDataService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// CustomerRequest is the request body for creating or updating a customer
type CustomerRequest struct {
	CompanyID     string `json:"company_id" binding:"required,uuid"`
	Code          string `json:"code" binding:"required,min=1,max=50"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Address1      string `json:"address1" binding:"max=500"`
	Address2      string `json:"address2" binding:"max=500"`
	City          string `json:"city" binding:"max=100"`
	State         string `json:"state" binding:"max=100"`
	Country       string `json:"country" binding:"max=100"`
	Pincode       string `json:"pincode" binding:"max=20"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone1        string `json:"phone1" binding:"max=50"`
	Phone2        string `json:"phone2" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	GSTIN         string `json:"gstin" binding:"max=15"`
	PAN           string `json:"pan" binding:"max=10"`
	Active        *bool  `json:"active"`
}

func (r CustomerRequest) fields() masterdata.CustomerFields {
	return masterdata.CustomerFields{
		Code:          r.Code,
		Name:          r.Name,
		Address1:      r.Address1,
		Address2:      r.Address2,
		City:          r.City,
		State:         r.State,
		Country:       r.Country,
		Pincode:       r.Pincode,
		ContactPerson: r.ContactPerson,
		Phone1:        r.Phone1,
		Phone2:        r.Phone2,
		Email:         r.Email,
		GSTIN:         r.GSTIN,
		PAN:           r.PAN,
	}
}

// Create creates a customer under a company.
func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), tenantID, actor, companyID, req.fields())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// Get returns one customer.
func (h *CustomerHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List returns customers of one company, paginated.
func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListCustomers(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a customer.
func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	customer, err := h.service.UpdateCustomer(c.Request.Context(), tenantID, id, actor, req.fields(), active)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete deletes a customer unless documents reference it.
func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers customer routes on the API group.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.POST("", h.Create)
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}
