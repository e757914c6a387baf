package shared

import (
	"github.com/google/uuid"
)

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
	GetVersion() int
	IncrementVersion()
}

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version int `json:"version" gorm:"not null;default:1"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}

// TenantAggregateRoot extends BaseAggregateRoot with multi-tenant scoping
// and audit attribution. CreatedBy/UpdatedBy carry the acting username from
// the request context, never a process-wide setting.
type TenantAggregateRoot struct {
	BaseAggregateRoot
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
	CreatedBy string    `json:"created_by" gorm:"size:100"`
	UpdatedBy string    `json:"updated_by" gorm:"size:100"`
}

// NewTenantAggregateRoot creates a new tenant-scoped aggregate root
func NewTenantAggregateRoot(tenantID uuid.UUID, actor string) TenantAggregateRoot {
	return TenantAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		TenantID:          tenantID,
		CreatedBy:         actor,
		UpdatedBy:         actor,
	}
}

// Touch records a modification by the given actor
func (t *TenantAggregateRoot) Touch(actor string) {
	t.UpdatedBy = actor
	t.UpdatedAt = nowFunc()
	t.IncrementVersion()
}
