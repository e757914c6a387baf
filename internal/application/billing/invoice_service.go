package billing

import (
	"context"
	"errors"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/numbering"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// domainOrInternal keeps domain error codes intact and wraps everything
// else as an internal error naming the failed operation.
func domainOrInternal(op string, err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de
	}
	return shared.NewInternalError(op, err)
}

// InvoiceService provides application-level invoice operations. Creation
// allocates the document number and persists header plus lines inside one
// transaction; any failure rolls the whole unit back.
type InvoiceService struct {
	invoices   billing.InvoiceRepository
	numbers    numbering.Allocator
	tx         shared.TransactionManager
	companies  masterdata.CompanyRepository
	customers  masterdata.CustomerRepository
	currencies masterdata.CurrencyRepository
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoices billing.InvoiceRepository,
	numbers numbering.Allocator,
	tx shared.TransactionManager,
	companies masterdata.CompanyRepository,
	customers masterdata.CustomerRepository,
	currencies masterdata.CurrencyRepository,
) *InvoiceService {
	return &InvoiceService{
		invoices:   invoices,
		numbers:    numbers,
		tx:         tx,
		companies:  companies,
		customers:  customers,
		currencies: currencies,
	}
}

func (s *InvoiceService) checkReferences(ctx context.Context, tenantID uuid.UUID, fields billing.InvoiceFields) error {
	company, err := s.companies.FindByIDForTenant(ctx, tenantID, fields.CompanyID)
	if err != nil {
		return shared.NewInternalError("check company", err)
	}
	if company == nil {
		return shared.NewValidationError("company does not exist")
	}
	customer, err := s.customers.FindByIDForTenant(ctx, tenantID, fields.CustomerID)
	if err != nil {
		return shared.NewInternalError("check customer", err)
	}
	if customer == nil {
		return shared.NewValidationError("customer does not exist")
	}
	currency, err := s.currencies.FindByIDForTenant(ctx, tenantID, fields.CurrencyID)
	if err != nil {
		return shared.NewInternalError("check currency", err)
	}
	if currency == nil {
		return shared.NewValidationError("currency does not exist")
	}
	return nil
}

// CreateInvoice numbers and persists a new invoice with its lines. The
// number is derived from the invoice date's fiscal year and the company
// sequence, inside the same transaction as the insert.
func (s *InvoiceService) CreateInvoice(ctx context.Context, tenantID uuid.UUID, actor string, fields billing.InvoiceFields, lines []billing.InvoiceLine) (*billing.Invoice, error) {
	if err := s.checkReferences(ctx, tenantID, fields); err != nil {
		return nil, err
	}

	inv, err := billing.NewInvoice(tenantID, actor, fields, lines)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		number, err := s.numbers.NextNumber(txCtx, tenantID, inv.CompanyID, numbering.DocumentTypeInvoice, inv.InvoiceDate)
		if err != nil {
			return err
		}
		inv.Number = number
		return s.invoices.Create(txCtx, inv)
	})
	if err != nil {
		return nil, domainOrInternal("create invoice", err)
	}
	return inv, nil
}

// GetInvoice returns one invoice with its lines.
func (s *InvoiceService) GetInvoice(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	inv, err := s.invoices.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find invoice", err)
	}
	if inv == nil {
		return nil, shared.NewNotFoundError("invoice")
	}
	return inv, nil
}

// ListInvoices returns a page of invoices for a company.
func (s *InvoiceService) ListInvoices(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[billing.Invoice], error) {
	invoices, err := s.invoices.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list invoices", err)
	}
	total, err := s.invoices.CountForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count invoices", err)
	}
	return shared.NewPaginated(invoices, total, filter), nil
}

// UpdateInvoice replaces the header fields and merges the payload lines
// into the stored set. Stored lines omitted from the payload are kept.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, tenantID, id uuid.UUID, actor string, fields billing.InvoiceFields, lines []billing.InvoiceLine) (*billing.Invoice, error) {
	inv, err := s.GetInvoice(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	fields.CompanyID = inv.CompanyID
	if err := s.checkReferences(ctx, tenantID, fields); err != nil {
		return nil, err
	}
	if err := inv.Update(actor, fields, lines); err != nil {
		return nil, err
	}
	if err := s.invoices.Update(ctx, inv); err != nil {
		return nil, shared.NewInternalError("update invoice", err)
	}
	return inv, nil
}

// CancelInvoice soft-cancels the invoice; the number stays burned.
func (s *InvoiceService) CancelInvoice(ctx context.Context, tenantID, id uuid.UUID, actor string) (*billing.Invoice, error) {
	inv, err := s.GetInvoice(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := inv.Cancel(actor); err != nil {
		return nil, err
	}
	if err := s.invoices.Update(ctx, inv); err != nil {
		return nil, shared.NewInternalError("cancel invoice", err)
	}
	return inv, nil
}

// DeleteInvoice removes the invoice and its lines. Receipt allocations
// referencing the invoice block the delete with a REFERENCE_IN_USE error.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, tenantID, id uuid.UUID) error {
	inv, err := s.GetInvoice(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.invoices.Delete(ctx, tenantID, inv.ID)
}
