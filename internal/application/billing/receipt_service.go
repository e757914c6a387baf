package billing

import (
	"context"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/numbering"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReceiptService provides application-level receipt operations. Every
// allocation-affecting mutation, including delete and cancel, recomputes
// the received amount of the invoices it touched, inside the same
// transaction as the mutation itself.
type ReceiptService struct {
	receipts billing.ReceiptRepository
	invoices billing.InvoiceRepository
	numbers  numbering.Allocator
	tx       shared.TransactionManager
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(
	receipts billing.ReceiptRepository,
	invoices billing.InvoiceRepository,
	numbers numbering.Allocator,
	tx shared.TransactionManager,
) *ReceiptService {
	return &ReceiptService{
		receipts: receipts,
		invoices: invoices,
		numbers:  numbers,
		tx:       tx,
	}
}

func (s *ReceiptService) checkAllocatedInvoices(ctx context.Context, tenantID uuid.UUID, allocs []billing.Allocation) error {
	seen := make(map[uuid.UUID]bool, len(allocs))
	for _, a := range allocs {
		if seen[a.InvoiceID] {
			continue
		}
		seen[a.InvoiceID] = true
		inv, err := s.invoices.FindByIDForTenant(ctx, tenantID, a.InvoiceID)
		if err != nil {
			return shared.NewInternalError("check allocated invoice", err)
		}
		if inv == nil {
			return shared.NewValidationError("allocated invoice %s does not exist", a.InvoiceID)
		}
	}
	return nil
}

func (s *ReceiptService) recomputeAll(ctx context.Context, tenantID uuid.UUID, invoiceIDs []uuid.UUID) error {
	for _, id := range invoiceIDs {
		if _, err := s.invoices.RecomputeReceived(ctx, tenantID, id); err != nil {
			return err
		}
	}
	return nil
}

// unionIDs merges two id lists preserving first-seen order.
func unionIDs(a, b []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(a)+len(b))
	out := make([]uuid.UUID, 0, len(a)+len(b))
	for _, ids := range [][]uuid.UUID{a, b} {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	return out
}

// CreateReceipt numbers and persists a new receipt with its allocations,
// then recomputes the received amount of every referenced invoice, all in
// one transaction.
func (s *ReceiptService) CreateReceipt(ctx context.Context, tenantID uuid.UUID, actor string, fields billing.ReceiptFields, allocs []billing.Allocation) (*billing.Receipt, error) {
	if err := s.checkAllocatedInvoices(ctx, tenantID, allocs); err != nil {
		return nil, err
	}

	r, err := billing.NewReceipt(tenantID, actor, fields, allocs)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		number, err := s.numbers.NextNumber(txCtx, tenantID, r.CompanyID, numbering.DocumentTypeReceipt, r.ReceiptDate)
		if err != nil {
			return err
		}
		r.Number = number
		if err := s.receipts.Create(txCtx, r); err != nil {
			return err
		}
		return s.recomputeAll(txCtx, tenantID, r.AffectedInvoiceIDs())
	})
	if err != nil {
		return nil, domainOrInternal("create receipt", err)
	}
	return r, nil
}

// GetReceipt returns one receipt with its allocations.
func (s *ReceiptService) GetReceipt(ctx context.Context, tenantID, id uuid.UUID) (*billing.Receipt, error) {
	r, err := s.receipts.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find receipt", err)
	}
	if r == nil {
		return nil, shared.NewNotFoundError("receipt")
	}
	return r, nil
}

// ListReceipts returns a page of receipts for a company.
func (s *ReceiptService) ListReceipts(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[billing.Receipt], error) {
	receipts, err := s.receipts.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list receipts", err)
	}
	total, err := s.receipts.CountForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count receipts", err)
	}
	return shared.NewPaginated(receipts, total, filter), nil
}

// UpdateReceipt replaces the header and diff-syncs the allocations, then
// recomputes every invoice referenced before or after the change. An
// invoice that only lost its allocation still gets its received amount
// corrected.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, tenantID, id uuid.UUID, actor string, fields billing.ReceiptFields, allocs []billing.Allocation) (*billing.Receipt, error) {
	r, err := s.GetReceipt(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkAllocatedInvoices(ctx, tenantID, allocs); err != nil {
		return nil, err
	}

	before := r.AffectedInvoiceIDs()
	removed, err := r.Update(actor, fields, allocs)
	if err != nil {
		return nil, err
	}
	affected := unionIDs(before, r.AffectedInvoiceIDs())

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.receipts.Update(txCtx, r, removed); err != nil {
			return err
		}
		return s.recomputeAll(txCtx, tenantID, affected)
	})
	if err != nil {
		return nil, domainOrInternal("update receipt", err)
	}
	return r, nil
}

// CancelReceipt soft-cancels the receipt. Its allocations drop out of the
// recompute, so the affected invoices' received amounts fall accordingly.
func (s *ReceiptService) CancelReceipt(ctx context.Context, tenantID, id uuid.UUID, actor string) (*billing.Receipt, error) {
	r, err := s.GetReceipt(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := r.Cancel(actor); err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.receipts.Update(txCtx, r, nil); err != nil {
			return err
		}
		return s.recomputeAll(txCtx, tenantID, r.AffectedInvoiceIDs())
	})
	if err != nil {
		return nil, domainOrInternal("cancel receipt", err)
	}
	return r, nil
}

// DeleteReceipt removes the receipt and its allocations, then recomputes
// the received amount of every invoice the receipt had allocated against,
// returning them to their pre-receipt balances.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, tenantID, id uuid.UUID) error {
	r, err := s.GetReceipt(ctx, tenantID, id)
	if err != nil {
		return err
	}
	affected := r.AffectedInvoiceIDs()

	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.receipts.Delete(txCtx, tenantID, r.ID); err != nil {
			return err
		}
		return s.recomputeAll(txCtx, tenantID, affected)
	})
	if err != nil {
		return domainOrInternal("delete receipt", err)
	}
	return nil
}
