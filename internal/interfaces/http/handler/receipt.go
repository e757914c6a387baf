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

// ReceiptHandler handles customer receipt endpoints.
type ReceiptHandler struct {
	BaseHandler
	service *billingapp.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(service *billingapp.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

// AllocationRequest is one invoice allocation in a receipt request.
// A zero ID marks a new allocation; a non-zero ID updates the existing
// one. Allocations absent from an update are removed.
type AllocationRequest struct {
	ID               uuid.UUID       `json:"id"`
	RowNo            int             `json:"row_no"`
	InvoiceID        uuid.UUID       `json:"invoice_id" binding:"required"`
	InvoiceDate      time.Time       `json:"invoice_date"`
	InvoiceAmount    decimal.Decimal `json:"invoice_amount"`
	CurrencyID       uuid.UUID       `json:"currency_id"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
	AllocatedAmount  decimal.Decimal `json:"allocated_amount"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	TDSAmount        decimal.Decimal `json:"tds_amount"`
	NetAmount        decimal.Decimal `json:"net_amount"`
}

// ReceiptRequest is the request body for creating or updating a receipt
type ReceiptRequest struct {
	CompanyID       uuid.UUID           `json:"company_id" binding:"required"`
	CompanyNo       string              `json:"company_no" binding:"max=50"`
	ReceiptDate     time.Time           `json:"receipt_date" binding:"required"`
	ReceiptType     string              `json:"receipt_type" binding:"max=50"`
	CustomerID      uuid.UUID           `json:"customer_id" binding:"required"`
	Amount          decimal.Decimal     `json:"amount"`
	PaymentMode     string              `json:"payment_mode" binding:"required,oneof=Cash Cheque Transfer"`
	CurrencyID      uuid.UUID           `json:"currency_id" binding:"required"`
	ExchangeRate    decimal.Decimal     `json:"exchange_rate"`
	TransactionNo   string              `json:"transaction_no" binding:"max=100"`
	TransactionDate *time.Time          `json:"transaction_date"`
	ChequeNo        string              `json:"cheque_no" binding:"max=50"`
	ChequeDate      *time.Time          `json:"cheque_date"`
	Remarks         string              `json:"remarks" binding:"max=1000"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Allocations     []AllocationRequest `json:"allocations" binding:"dive"`
}

func (r ReceiptRequest) fields() billing.ReceiptFields {
	return billing.ReceiptFields{
		CompanyID:       r.CompanyID,
		CompanyNo:       r.CompanyNo,
		ReceiptDate:     r.ReceiptDate,
		ReceiptType:     r.ReceiptType,
		CustomerID:      r.CustomerID,
		Amount:          r.Amount,
		PaymentMode:     billing.PaymentMode(r.PaymentMode),
		CurrencyID:      r.CurrencyID,
		ExchangeRate:    r.ExchangeRate,
		TransactionNo:   r.TransactionNo,
		TransactionDate: r.TransactionDate,
		ChequeNo:        r.ChequeNo,
		ChequeDate:      r.ChequeDate,
		Remarks:         r.Remarks,
		TotalAmount:     r.TotalAmount,
	}
}

func (r ReceiptRequest) allocations() []billing.Allocation {
	allocs := make([]billing.Allocation, 0, len(r.Allocations))
	for _, a := range r.Allocations {
		allocs = append(allocs, billing.Allocation{
			ID:               a.ID,
			RowNo:            a.RowNo,
			InvoiceID:        a.InvoiceID,
			InvoiceDate:      a.InvoiceDate,
			InvoiceAmount:    a.InvoiceAmount,
			CurrencyID:       a.CurrencyID,
			ExchangeRate:     a.ExchangeRate,
			AllocatedAmount:  a.AllocatedAmount,
			CommissionAmount: a.CommissionAmount,
			TDSAmount:        a.TDSAmount,
			NetAmount:        a.NetAmount,
		})
	}
	return allocs
}

// Create creates a receipt and applies its allocations to the referenced
// invoices.
func (h *ReceiptHandler) Create(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := h.service.CreateReceipt(c.Request.Context(), tenantID, actor, req.fields(), req.allocations())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receipt)
}

// Get returns one receipt with its allocations.
func (h *ReceiptHandler) Get(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.service.GetReceipt(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// List returns receipts of one company, paginated.
func (h *ReceiptHandler) List(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	page, err := h.service.ListReceipts(c.Request.Context(), tenantID, companyID, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update updates a receipt and re-syncs its allocations against the
// request; received amounts on affected invoices are recomputed.
func (h *ReceiptHandler) Update(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	receipt, err := h.service.UpdateReceipt(c.Request.Context(), tenantID, id, actor, req.fields(), req.allocations())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// Cancel cancels a receipt and releases its allocations.
func (h *ReceiptHandler) Cancel(c *gin.Context) {
	tenantID, actor, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.service.CancelReceipt(c.Request.Context(), tenantID, id, actor)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receipt)
}

// Delete deletes a receipt and recomputes received amounts on the
// invoices it had allocations against.
func (h *ReceiptHandler) Delete(c *gin.Context) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	id, ok := bindID(c)
	if !ok {
		h.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.service.DeleteReceipt(c.Request.Context(), tenantID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers receipt routes on the API group.
func (h *ReceiptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.Create)
		receipts.GET("", h.List)
		receipts.GET("/:id", h.Get)
		receipts.PUT("/:id", h.Update)
		receipts.POST("/:id/cancel", h.Cancel)
		receipts.DELETE("/:id", h.Delete)
	}
}
