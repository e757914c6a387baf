package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Currency is a tenant-level reference record. Documents carry their own
// exchange rate at posting time; the currency row is only identity.
type Currency struct {
	shared.TenantAggregateRoot
	Name   string `json:"name"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Active bool   `json:"active"`
}

// NewCurrency creates an active currency.
func NewCurrency(tenantID uuid.UUID, actor, name, code, symbol string) (*Currency, error) {
	if name == "" {
		return nil, shared.NewValidationError("currency name is required")
	}
	if code == "" {
		return nil, shared.NewValidationError("currency code is required")
	}
	return &Currency{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		Name:                name,
		Code:                code,
		Symbol:              symbol,
		Active:              true,
	}, nil
}

// Update replaces the editable fields.
func (c *Currency) Update(actor, name, code, symbol string, active bool) error {
	if name == "" {
		return shared.NewValidationError("currency name is required")
	}
	if code == "" {
		return shared.NewValidationError("currency code is required")
	}
	c.Name = name
	c.Code = code
	c.Symbol = symbol
	c.Active = active
	c.Touch(actor)
	return nil
}
