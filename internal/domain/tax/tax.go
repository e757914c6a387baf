package tax

import (
	"fmt"
	"strings"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxType identifies the tax regime a header belongs to. GST is the only
// regime with a slab breakdown; other types produce no slabs.
type TaxType string

const (
	TaxTypeGST TaxType = "GST"
)

// SupplyScope distinguishes inter-state from intra-state supply slabs.
type SupplyScope string

const (
	SupplyInterState SupplyScope = "Inter"
	SupplyIntraState SupplyScope = "Intra"
)

// Slab is one component row of a tax header's breakdown. Slabs are derived
// from the header's type and rate and are rewritten as a set on every
// header update; they are never edited individually.
type Slab struct {
	ID          uuid.UUID       `json:"id"`
	TaxHeaderID uuid.UUID       `json:"tax_header_id"`
	RowNo       int             `json:"row_no"`
	Supply      SupplyScope     `json:"supply"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
}

// Header is the aggregate root for a named tax rate within a company.
type Header struct {
	shared.TenantAggregateRoot
	CompanyID uuid.UUID       `json:"company_id"`
	Type      TaxType         `json:"type"`
	Name      string          `json:"name"`
	Rate      decimal.Decimal `json:"rate"`
	Active    bool            `json:"active"`
	Slabs     []Slab          `json:"slabs"`
}

// NewHeader creates a tax header with its slabs generated from type and rate.
func NewHeader(tenantID uuid.UUID, actor string, companyID uuid.UUID, taxType TaxType, name string, rate decimal.Decimal) (*Header, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if name == "" {
		return nil, shared.NewValidationError("tax name is required")
	}
	if taxType == "" {
		return nil, shared.NewValidationError("tax type is required")
	}
	if rate.IsNegative() {
		return nil, shared.NewValidationError("tax rate cannot be negative")
	}

	h := &Header{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		Type:                taxType,
		Name:                name,
		Rate:                rate,
		Active:              true,
	}
	h.RegenerateSlabs()
	return h, nil
}

// Update overwrites the header's mutable fields and always rewrites the
// slab set, even when type and rate are unchanged.
func (h *Header) Update(actor string, taxType TaxType, name string, rate decimal.Decimal, active bool) error {
	if name == "" {
		return shared.NewValidationError("tax name is required")
	}
	if taxType == "" {
		return shared.NewValidationError("tax type is required")
	}
	if rate.IsNegative() {
		return shared.NewValidationError("tax rate cannot be negative")
	}
	h.Type = taxType
	h.Name = name
	h.Rate = rate
	h.Active = active
	h.RegenerateSlabs()
	h.Touch(actor)
	return nil
}

// RegenerateSlabs rebuilds the slab rows from the current type and rate.
func (h *Header) RegenerateSlabs() {
	h.Slabs = GenerateSlabs(h.Type, h.Rate)
	for i := range h.Slabs {
		h.Slabs[i].TaxHeaderID = h.ID
	}
}

// GenerateSlabs derives the slab breakdown for a tax type and rate. GST
// yields exactly three rows in fixed order: IGST at the full rate for
// inter-state supply, then CGST and SGST at half the rate each for
// intra-state supply. Unknown types yield no slabs.
func GenerateSlabs(taxType TaxType, rate decimal.Decimal) []Slab {
	if !strings.EqualFold(string(taxType), string(TaxTypeGST)) {
		return []Slab{}
	}

	half := rate.Div(decimal.NewFromInt(2))
	rows := []struct {
		supply SupplyScope
		label  string
		rate   decimal.Decimal
	}{
		{SupplyInterState, fmt.Sprintf("IGST %s%%", rate.String()), rate},
		{SupplyIntraState, fmt.Sprintf("CGST %s%%", half.String()), half},
		{SupplyIntraState, fmt.Sprintf("SGST %s%%", half.String()), half},
	}

	slabs := make([]Slab, len(rows))
	for i, r := range rows {
		slabs[i] = Slab{
			ID:     uuid.New(),
			RowNo:  i + 1,
			Supply: r.supply,
			Name:   r.label,
			Rate:   r.rate,
		}
	}
	return slabs
}
