package billing

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository persists invoices and their lines. Header and lines
// are always written inside one transaction.
type InvoiceRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error)
	Create(ctx context.Context, inv *Invoice) error
	// Update persists header changes and upserts inv.Lines. Lines never
	// present in inv.Lines are left untouched.
	Update(ctx context.Context, inv *Invoice) error
	// Delete removes the lines first, then the header, in one transaction.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// RecomputeReceived sums allocated amounts across all allocation rows
	// whose receipt header is not cancelled, writes the sum to the
	// invoice's received-amount column, and returns it. It is the single
	// writer of that column.
	RecomputeReceived(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error)
}

// ReceiptRepository persists receipts and their allocation rows.
type ReceiptRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Receipt, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]Receipt, error)
	CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error)
	Create(ctx context.Context, r *Receipt) error
	// Update persists header changes, upserts r.Allocations and deletes
	// the rows named in removedAllocationIDs, all in one transaction.
	Update(ctx context.Context, r *Receipt, removedAllocationIDs []uuid.UUID) error
	// Delete removes the allocations first, then the header.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
