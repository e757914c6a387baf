package masterdata

import (
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HSN maps a harmonized-system code to a tax header for a company, with
// the date the rate takes effect.
type HSN struct {
	shared.TenantAggregateRoot
	CompanyID     uuid.UUID       `json:"company_id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	TaxHeaderID   uuid.UUID       `json:"tax_header_id"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	EffectiveDate time.Time       `json:"effective_date"`
	Active        bool            `json:"active"`
}

// HSNFields carries the caller-editable fields of an HSN record.
type HSNFields struct {
	Code          string
	Description   string
	TaxHeaderID   uuid.UUID
	TaxRate       decimal.Decimal
	EffectiveDate time.Time
}

func (f HSNFields) validate() error {
	if f.Code == "" {
		return shared.NewValidationError("hsn code is required")
	}
	if f.TaxHeaderID == uuid.Nil {
		return shared.NewValidationError("tax header is required")
	}
	if f.EffectiveDate.IsZero() {
		return shared.NewValidationError("effective date is required")
	}
	return nil
}

// NewHSN creates an active HSN record under a company.
func NewHSN(tenantID uuid.UUID, actor string, companyID uuid.UUID, fields HSNFields) (*HSN, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}
	h := &HSN{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		Active:              true,
	}
	h.apply(fields)
	return h, nil
}

// Update replaces the editable fields.
func (h *HSN) Update(actor string, fields HSNFields, active bool) error {
	if err := fields.validate(); err != nil {
		return err
	}
	h.apply(fields)
	h.Active = active
	h.Touch(actor)
	return nil
}

func (h *HSN) apply(f HSNFields) {
	h.Code = f.Code
	h.Description = f.Description
	h.TaxHeaderID = f.TaxHeaderID
	h.TaxRate = f.TaxRate
	h.EffectiveDate = f.EffectiveDate
}
