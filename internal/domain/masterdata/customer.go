package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is a buyer registered under a company.
type Customer struct {
	shared.TenantAggregateRoot
	CompanyID     uuid.UUID `json:"company_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Address1      string    `json:"address1"`
	Address2      string    `json:"address2"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Pincode       string    `json:"pincode"`
	ContactPerson string    `json:"contact_person"`
	Phone1        string    `json:"phone1"`
	Phone2        string    `json:"phone2"`
	Email         string    `json:"email"`
	GSTIN         string    `json:"gstin"`
	PAN           string    `json:"pan"`
	Active        bool      `json:"active"`
}

// CustomerFields carries the caller-editable fields of a customer.
type CustomerFields struct {
	Code          string
	Name          string
	Address1      string
	Address2      string
	City          string
	State         string
	Country       string
	Pincode       string
	ContactPerson string
	Phone1        string
	Phone2        string
	Email         string
	GSTIN         string
	PAN           string
}

func (f CustomerFields) validate() error {
	if f.Code == "" {
		return shared.NewValidationError("customer code is required")
	}
	if f.Name == "" {
		return shared.NewValidationError("customer name is required")
	}
	return nil
}

// NewCustomer creates an active customer under a company.
func NewCustomer(tenantID uuid.UUID, actor string, companyID uuid.UUID, fields CustomerFields) (*Customer, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}
	c := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		Active:              true,
	}
	c.apply(fields)
	return c, nil
}

// Update replaces the editable fields. The owning company never changes.
func (c *Customer) Update(actor string, fields CustomerFields, active bool) error {
	if err := fields.validate(); err != nil {
		return err
	}
	c.apply(fields)
	c.Active = active
	c.Touch(actor)
	return nil
}

func (c *Customer) apply(f CustomerFields) {
	c.Code = f.Code
	c.Name = f.Name
	c.Address1 = f.Address1
	c.Address2 = f.Address2
	c.City = f.City
	c.State = f.State
	c.Country = f.Country
	c.Pincode = f.Pincode
	c.ContactPerson = f.ContactPerson
	c.Phone1 = f.Phone1
	c.Phone2 = f.Phone2
	c.Email = f.Email
	c.GSTIN = f.GSTIN
	c.PAN = f.PAN
}
