package masterdata

import (
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item under a company, carrying its default UOM,
// HSN code and tax header.
type Product struct {
	shared.TenantAggregateRoot
	CompanyID     uuid.UUID       `json:"company_id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Specification string          `json:"specification"`
	SellingUOMID  uuid.UUID       `json:"selling_uom_id"`
	PurchaseUOMID uuid.UUID       `json:"purchase_uom_id"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	HSNCode       string          `json:"hsn_code"`
	TaxHeaderID   uuid.UUID       `json:"tax_header_id"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Active        bool            `json:"active"`
}

// ProductFields carries the caller-editable fields of a product.
type ProductFields struct {
	Code          string
	Name          string
	Specification string
	SellingUOMID  uuid.UUID
	PurchaseUOMID uuid.UUID
	SellingPrice  decimal.Decimal
	CostPrice     decimal.Decimal
	HSNCode       string
	TaxHeaderID   uuid.UUID
	TaxRate       decimal.Decimal
}

func (f ProductFields) validate() error {
	if f.Code == "" {
		return shared.NewValidationError("product code is required")
	}
	if f.Name == "" {
		return shared.NewValidationError("product name is required")
	}
	if f.SellingUOMID == uuid.Nil {
		return shared.NewValidationError("selling uom is required")
	}
	if f.SellingPrice.IsNegative() || f.CostPrice.IsNegative() {
		return shared.NewValidationError("prices cannot be negative")
	}
	return nil
}

// NewProduct creates an active product under a company.
func NewProduct(tenantID uuid.UUID, actor string, companyID uuid.UUID, fields ProductFields) (*Product, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("company is required")
	}
	if err := fields.validate(); err != nil {
		return nil, err
	}
	p := &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		CompanyID:           companyID,
		Active:              true,
	}
	p.apply(fields)
	return p, nil
}

// Update replaces the editable fields.
func (p *Product) Update(actor string, fields ProductFields, active bool) error {
	if err := fields.validate(); err != nil {
		return err
	}
	p.apply(fields)
	p.Active = active
	p.Touch(actor)
	return nil
}

func (p *Product) apply(f ProductFields) {
	p.Code = f.Code
	p.Name = f.Name
	p.Specification = f.Specification
	p.SellingUOMID = f.SellingUOMID
	p.PurchaseUOMID = f.PurchaseUOMID
	p.SellingPrice = f.SellingPrice
	p.CostPrice = f.CostPrice
	p.HSNCode = f.HSNCode
	p.TaxHeaderID = f.TaxHeaderID
	p.TaxRate = f.TaxRate
}
