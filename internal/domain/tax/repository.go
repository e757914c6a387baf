package tax

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// HeaderRepository persists tax headers and their slab rows. Saving a
// header always rewrites its full slab set.
type HeaderRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Header, error)
	FindByName(ctx context.Context, tenantID, companyID uuid.UUID, name string) (*Header, error)
	FindAllForTenant(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]Header, error)
	CountForTenant(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error)
	// Create persists the header and its slabs in one transaction.
	Create(ctx context.Context, h *Header) error
	// Update persists the header and replaces all stored slab rows with
	// h.Slabs in the same transaction.
	Update(ctx context.Context, h *Header) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
