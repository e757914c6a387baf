package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	exportapp "github.com/finvoice/backend/internal/application/export"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams invoice, receipt and master-data registers as
// Excel workbooks.
type ExportHandler struct {
	BaseHandler
	service *exportapp.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(service *exportapp.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

type exportFunc func(ctx context.Context, w io.Writer, tenantID, companyID uuid.UUID, filter shared.Filter) error

// stream writes one register to the response body with download headers.
func (h *ExportHandler) stream(c *gin.Context, register string, write exportFunc) {
	tenantID, _, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	companyID, listReq, err := bindCompanyList(c)
	if err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filename := exportapp.ExportFilename(register, time.Now())
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := write(c.Request.Context(), c.Writer, tenantID, companyID, listReq.ToFilter()); err != nil {
		// Headers are already on the wire; abort the stream.
		_ = c.Error(err)
		c.Abort()
	}
}

// Invoices exports the invoice register of one company.
func (h *ExportHandler) Invoices(c *gin.Context) {
	h.stream(c, "invoices", h.service.ExportInvoices)
}

// Receipts exports the receipt register of one company.
func (h *ExportHandler) Receipts(c *gin.Context) {
	h.stream(c, "receipts", h.service.ExportReceipts)
}

// Customers exports the customer master of one company.
func (h *ExportHandler) Customers(c *gin.Context) {
	h.stream(c, "customers", h.service.ExportCustomers)
}

// Products exports the product master of one company.
func (h *ExportHandler) Products(c *gin.Context) {
	h.stream(c, "products", h.service.ExportProducts)
}

// RegisterRoutes registers export routes on the API group.
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	exports := rg.Group("/exports")
	{
		exports.GET("/invoices", h.Invoices)
		exports.GET("/receipts", h.Receipts)
		exports.GET("/customers", h.Customers)
		exports.GET("/products", h.Products)
	}
}
