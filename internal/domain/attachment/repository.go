package attachment

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists attachment metadata. Find methods return (nil, nil)
// when the record does not exist.
type Repository interface {
	Create(ctx context.Context, a *Attachment) error
	Update(ctx context.Context, a *Attachment) error
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Attachment, error)
	FindByOwner(ctx context.Context, tenantID uuid.UUID, ownerType OwnerType, ownerID uuid.UUID) ([]*Attachment, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
