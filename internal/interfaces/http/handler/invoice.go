package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	billingapp "github.com/finvoice/backend/internal/application/billing"
	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

// InvoiceHandler handles sales invoice endpoints.
type InvoiceHandler struct {
	BaseHandler
	service *billingapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service *billingapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

// InvoiceLineRequest is one invoice line in a create or update request.
// A zero ID marks a new line; a non-zero ID updates the existing line.
type InvoiceLineRequest struct {
	ID            uuid.UUID       `json:"id"`
	RowNo         int             `json:"row_no"`
	ProductID     uuid.UUID       `json:"product_id" binding:"required"`
	UOMID         uuid.UUID       `json:"uom_id" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	DiscountType  string          `json:"discount_type" binding:"omitempty,oneof=percent amount"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxHeaderID   uuid.UUID       `json:"tax_header_id"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	CGSTPercent   decimal.Decimal `json:"cgst_percent"`
	SGSTPercent   decimal.Decimal `json:"sgst_percent"`
	IGSTPercent   decimal.Decimal `json:"igst_percent"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	NetAmount     decimal.Decimal `json:"net_amount"`
}

// InvoiceRequest is the request body for creating or updating an invoice
type InvoiceRequest struct {
	CompanyID       uuid.UUID            `json:"company_id" binding:"required"`
	CompanyNo       string               `json:"company_no" binding:"max=50"`
	InvoiceDate     time.Time            `json:"invoice_date" binding:"required"`
	CustomerID      uuid.UUID            `json:"customer_id" binding:"required"`
	ReferenceNo     string               `json:"reference_no" binding:"max=100"`
	ReferenceDate   *time.Time           `json:"reference_date"`
	CurrencyID      uuid.UUID            `json:"currency_id" binding:"required"`
	ExchangeRate    decimal.Decimal      `json:"exchange_rate"`
	SupplyType      string               `json:"supply_type" binding:"required,oneof=Intra Inter"`
	Remarks         string               `json:"remarks" binding:"max=1000"`
	GrossAmount     decimal.Decimal      `json:"gross_amount"`
	CGSTAmount      decimal.Decimal      `json:"cgst_amount"`
	SGSTAmount      decimal.Decimal      `json:"sgst_amount"`
	IGSTAmount      decimal.Decimal      `json:"igst_amount"`
	DiscountAmount  decimal.Decimal      `json:"discount_amount"`
	AddedCharges    decimal.Decimal      `json:"added_charges"`
	DeductedCharges decimal.Decimal      `json:"deducted_charges"`
	RoundOff        decimal.Decimal      `json:"round_off"`
	NetAmount       decimal.Decimal      `json:"net_amount"`
	Lines           []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r InvoiceRequest) fields() billing.InvoiceFields {
	return billing.InvoiceFields{
		CompanyID:       r.CompanyID,
		CompanyNo:       r.CompanyNo,
		InvoiceDate:     r.InvoiceDate,
		CustomerID:      r.CustomerID,
		ReferenceNo:     r.ReferenceNo,
		ReferenceDate:   r.ReferenceDate,
		CurrencyID:      r.CurrencyID,
		ExchangeRate:    r.ExchangeRate,
		SupplyType:      billing.SupplyType(r.SupplyType),
		Remarks:         r.Remarks,
		GrossAmount:     r.GrossAmount,
		CGSTAmount:      r.CGSTAmount,
		SGSTAmount:      r.SGSTAmount,
		IGSTAmount:      r.IGSTAmount,
		DiscountAmount:  r.DiscountAmount,
		AddedCharges:    r.AddedCharges,
		DeductedCharges: r.DeductedCharges,
		RoundOff:        r.RoundOff,
		NetAmount:       r.NetAmount,
	}
}

func (r InvoiceRequest) lines() []billing.InvoiceLine {
	lines := make([]billing.InvoiceLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, billing.InvoiceLine{
			ID:            l.ID,
			RowNo:         l.RowNo,
			ProductID:     l.ProductID,
			UOMID:         l.UOMID,
			Quantity:      l.Quantity,
			Rate:          l.Rate,
			Amount:        l.Amount,
			DiscountType:  l.DiscountType,
			DiscountValue: l.DiscountValue,
			TaxHeaderID:   l.TaxHeaderID,
			TaxRate:       l.TaxRate,
			CGSTPercent:   l.CGSTPercent,
			SGSTPercent:   l.SGSTPercent,
			IGSTPercent:   l.IGSTPercent,
			CGSTAmount:    l.CGSTAmount,
			SGSTAmount:    l.SGSTAmount,
			IGSTAmount:    l.IGSTAmount,
			TaxAmount:     l.TaxAmount,
			NetAmount:     l.NetAmount,
		})
	}
	return lines
}

// Create creates an invoice. The document number is allocated inside the
// create transaction.
func (h *InvoiceHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inv, err := h.service.CreateInvoice(c.Request.Context(), tenantID, actor, req.fields(), req.lines())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// Get returns one invoice with its lines.
func (h *InvoiceHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.service.GetInvoice(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// List returns invoices of one company, paginated.
func (h *InvoiceHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListInvoices(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates an invoice. Lines with IDs are updated, lines without IDs
// are added; lines absent from the request are kept as they are.
func (h *InvoiceHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	inv, err := h.service.UpdateInvoice(c.Request.Context(), tenantID, id, actor, req.fields(), req.lines())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// Cancel cancels an invoice. Cancelled invoices keep their number.
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.service.CancelInvoice(c.Request.Context(), tenantID, id, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// Delete deletes an invoice unless receipts have allocations against it.
func (h *InvoiceHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers invoice routes on the API group.
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.PUT("/:id", h.Update)
		invoices.POST("/:id/cancel", h.Cancel)
		invoices.DELETE("/:id", h.Delete)
	}
}
