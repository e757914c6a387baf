package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "02-01-2006"

// ExportService writes invoice, receipt and master-data registers as
// xlsx workbooks.
type ExportService struct {
	invoices  billing.InvoiceRepository
	receipts  billing.ReceiptRepository
	customers masterdata.CustomerRepository
	products  masterdata.ProductRepository
}

// NewExportService creates a new ExportService.
func NewExportService(
	invoices billing.InvoiceRepository,
	receipts billing.ReceiptRepository,
	customers masterdata.CustomerRepository,
	products masterdata.ProductRepository,
) *ExportService {
	return &ExportService{
		invoices:  invoices,
		receipts:  receipts,
		customers: customers,
		products:  products,
	}
}

// ExportInvoices writes an invoice register for the company to w.
func (s *ExportService) ExportInvoices(ctx context.Context, w io.Writer, tenantID, companyID uuid.UUID, filter shared.Filter) error {
	invoices, err := s.invoices.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return shared.NewInternalError("list invoices for export", err)
	}

	f, sheet, err := newWorkbook("Invoices", []string{
		"Invoice No", "Date", "Customer", "Supply Type", "Gross Amount",
		"CGST", "SGST", "IGST", "Net Amount", "Received", "Outstanding", "Status",
	})
	if err != nil {
		return shared.NewInternalError("build invoice workbook", err)
	}
	defer f.Close()

	for i, inv := range invoices {
		status := "Open"
		if inv.Cancelled {
			status = "Cancelled"
		}
		if err := setRowValues(f, sheet, i+2, []interface{}{
			inv.Number,
			inv.InvoiceDate.Format(dateLayout),
			inv.CustomerID.String(),
			string(inv.SupplyType),
			inv.GrossAmount.InexactFloat64(),
			inv.CGSTAmount.InexactFloat64(),
			inv.SGSTAmount.InexactFloat64(),
			inv.IGSTAmount.InexactFloat64(),
			inv.NetAmount.InexactFloat64(),
			inv.ReceivedAmount.InexactFloat64(),
			inv.OutstandingAmount().InexactFloat64(),
			status,
		}); err != nil {
			return shared.NewInternalError("write invoice row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return shared.NewInternalError("write invoice workbook", err)
	}
	return nil
}

// ExportReceipts writes a receipt register for the company to w.
func (s *ExportService) ExportReceipts(ctx context.Context, w io.Writer, tenantID, companyID uuid.UUID, filter shared.Filter) error {
	receipts, err := s.receipts.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return shared.NewInternalError("list receipts for export", err)
	}

	f, sheet, err := newWorkbook("Receipts", []string{
		"Receipt No", "Date", "Customer", "Payment Mode", "Amount",
		"Allocated", "Allocations", "Status",
	})
	if err != nil {
		return shared.NewInternalError("build receipt workbook", err)
	}
	defer f.Close()

	for i, r := range receipts {
		status := "Open"
		if r.Cancelled {
			status = "Cancelled"
		}
		if err := setRowValues(f, sheet, i+2, []interface{}{
			r.Number,
			r.ReceiptDate.Format(dateLayout),
			r.CustomerID.String(),
			string(r.PaymentMode),
			r.Amount.InexactFloat64(),
			r.TotalAmount.InexactFloat64(),
			len(r.Allocations),
			status,
		}); err != nil {
			return shared.NewInternalError("write receipt row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return shared.NewInternalError("write receipt workbook", err)
	}
	return nil
}

// ExportCustomers writes the customer master for the company to w.
func (s *ExportService) ExportCustomers(ctx context.Context, w io.Writer, tenantID, companyID uuid.UUID, filter shared.Filter) error {
	customers, err := s.customers.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return shared.NewInternalError("list customers for export", err)
	}

	f, sheet, err := newWorkbook("Customers", []string{
		"Code", "Name", "City", "State", "Phone", "Email", "GSTIN", "PAN", "Active",
	})
	if err != nil {
		return shared.NewInternalError("build customer workbook", err)
	}
	defer f.Close()

	for i, c := range customers {
		if err := setRowValues(f, sheet, i+2, []interface{}{
			c.Code, c.Name, c.City, c.State, c.Phone1, c.Email, c.GSTIN, c.PAN, c.Active,
		}); err != nil {
			return shared.NewInternalError("write customer row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return shared.NewInternalError("write customer workbook", err)
	}
	return nil
}

// ExportProducts writes the product master for the company to w.
func (s *ExportService) ExportProducts(ctx context.Context, w io.Writer, tenantID, companyID uuid.UUID, filter shared.Filter) error {
	products, err := s.products.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return shared.NewInternalError("list products for export", err)
	}

	f, sheet, err := newWorkbook("Products", []string{
		"Code", "Name", "Specification", "Selling Price", "Cost Price",
		"HSN Code", "Tax Rate", "Active",
	})
	if err != nil {
		return shared.NewInternalError("build product workbook", err)
	}
	defer f.Close()

	for i, p := range products {
		if err := setRowValues(f, sheet, i+2, []interface{}{
			p.Code, p.Name, p.Specification,
			p.SellingPrice.InexactFloat64(),
			p.CostPrice.InexactFloat64(),
			p.HSNCode,
			p.TaxRate.InexactFloat64(),
			p.Active,
		}); err != nil {
			return shared.NewInternalError("write product row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return shared.NewInternalError("write product workbook", err)
	}
	return nil
}

// ExportFilename builds a timestamped attachment filename for a register.
func ExportFilename(register string, at time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", register, at.Format("20060102-150405"))
}

func newWorkbook(sheet string, headers []string) (*excelize.File, string, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}
	if err := setRowValues(f, sheet, 1, toInterfaces(headers)); err != nil {
		return nil, "", err
	}
	return f, sheet, nil
}

func setRowValues(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
