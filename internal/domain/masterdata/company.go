package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Company is the billing entity that owns documents and most master data.
// CompanyNo is the short code stamped onto documents.
type Company struct {
	shared.TenantAggregateRoot
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contact_person"`
	GSTIN         string    `json:"gstin"`
	CurrencyID    uuid.UUID `json:"currency_id"`
	Active        bool      `json:"active"`
}

// CompanyFields carries the caller-editable fields of a company.
type CompanyFields struct {
	Name          string
	Code          string
	Address       string
	Phone         string
	Email         string
	ContactPerson string
	GSTIN         string
	CurrencyID    uuid.UUID
}

func (f CompanyFields) validate() error {
	if f.Name == "" {
		return shared.NewValidationError("company name is required")
	}
	if f.Code == "" {
		return shared.NewValidationError("company code is required")
	}
	return nil
}

// NewCompany creates an active company.
func NewCompany(tenantID uuid.UUID, actor string, fields CompanyFields) (*Company, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}
	c := &Company{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		Active:              true,
	}
	c.apply(fields)
	return c, nil
}

// Update replaces the editable fields.
func (c *Company) Update(actor string, fields CompanyFields, active bool) error {
	if err := fields.validate(); err != nil {
		return err
	}
	c.apply(fields)
	c.Active = active
	c.Touch(actor)
	return nil
}

func (c *Company) apply(f CompanyFields) {
	c.Name = f.Name
	c.Code = f.Code
	c.Address = f.Address
	c.Phone = f.Phone
	c.Email = f.Email
	c.ContactPerson = f.ContactPerson
	c.GSTIN = f.GSTIN
	c.CurrencyID = f.CurrencyID
}
