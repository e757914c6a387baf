package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvoice/backend/internal/domain/tax"
)

// TaxHeaderModel is the persistence model for the tax Header aggregate root.
type TaxHeaderModel struct {
	TenantAggregateModel
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_tax_company_name,priority:1"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_tax_company_name,priority:2"`
	Rate      decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	Active    bool            `gorm:"not null;default:true"`
	Slabs     []TaxSlabModel  `gorm:"foreignKey:TaxHeaderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TaxHeaderModel) TableName() string { return "tax_headers" }

// TaxSlabModel is one derived component row of a tax header.
type TaxSlabModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	TaxHeaderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	RowNo       int             `gorm:"not null"`
	Supply      string          `gorm:"type:varchar(10);not null"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(9,4);not null"`
}

// TableName returns the table name for GORM
func (TaxSlabModel) TableName() string { return "tax_slabs" }

// ToDomain converts the persistence model to a domain Header with its slabs.
func (m *TaxHeaderModel) ToDomain() *tax.Header {
	h := &tax.Header{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Type:                tax.TaxType(m.Type),
		Name:                m.Name,
		Rate:                m.Rate,
		Active:              m.Active,
	}
	h.Slabs = make([]tax.Slab, len(m.Slabs))
	for i, s := range m.Slabs {
		h.Slabs[i] = tax.Slab{
			ID:          s.ID,
			TaxHeaderID: s.TaxHeaderID,
			RowNo:       s.RowNo,
			Supply:      tax.SupplyScope(s.Supply),
			Name:        s.Name,
			Rate:        s.Rate,
		}
	}
	return h
}

// TaxHeaderModelFromDomain converts a domain Header to its persistence model.
func TaxHeaderModelFromDomain(h *tax.Header) *TaxHeaderModel {
	m := &TaxHeaderModel{
		CompanyID: h.CompanyID,
		Type:      string(h.Type),
		Name:      h.Name,
		Rate:      h.Rate,
		Active:    h.Active,
	}
	m.FromDomainTenantAggregateRoot(h.TenantAggregateRoot)
	m.Slabs = make([]TaxSlabModel, len(h.Slabs))
	for i, s := range h.Slabs {
		m.Slabs[i] = TaxSlabModel{
			ID:          s.ID,
			TaxHeaderID: s.TaxHeaderID,
			RowNo:       s.RowNo,
			Supply:      string(s.Supply),
			Name:        s.Name,
			Rate:        s.Rate,
		}
	}
	return m
}
