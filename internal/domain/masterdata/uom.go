package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UOM is a unit of measure registered under a company.
type UOM struct {
	shared.TenantAggregateRoot
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
}

// NewUOM creates an active unit of measure.
func NewUOM(tenantID uuid.UUID, actor string, companyID uuid.UUID, name, code string) (*UOM, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("uom name is required")
	}
	if code == "" {
		return nil, shared.NewValidationError("uom code is required")
	}
	return &UOM{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		Name:                name,
		Code:                code,
		Active:              true,
	}, nil
}

// Update replaces the editable fields.
func (u *UOM) Update(actor, name, code string, active bool) error {
	if name == "" {
		return shared.NewValidationError("uom name is required")
	}
	if code == "" {
		return shared.NewValidationError("uom code is required")
	}
	u.Name = name
	u.Code = code
	u.Active = active
	u.Touch(actor)
	return nil
}
