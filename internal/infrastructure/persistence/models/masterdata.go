package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvoice/backend/internal/domain/masterdata"
)

// CompanyModel is the persistence model for the Company aggregate root.
type CompanyModel struct {
	TenantAggregateModel
	Name          string    `gorm:"type:varchar(200);not null"`
	Code          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_tenant_code,priority:2"`
	Address       string    `gorm:"type:text"`
	Phone         string    `gorm:"type:varchar(50)"`
	Email         string    `gorm:"type:varchar(200)"`
	ContactPerson string    `gorm:"type:varchar(200)"`
	GSTIN         string    `gorm:"type:varchar(20)"`
	CurrencyID    uuid.UUID `gorm:"type:uuid"`
	Active        bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string { return "companies" }

// ToDomain converts the persistence model to a domain Company.
func (m *CompanyModel) ToDomain() *masterdata.Company {
	return &masterdata.Company{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Code:                m.Code,
		Address:             m.Address,
		Phone:               m.Phone,
		Email:               m.Email,
		ContactPerson:       m.ContactPerson,
		GSTIN:               m.GSTIN,
		CurrencyID:          m.CurrencyID,
		Active:              m.Active,
	}
}

// CompanyModelFromDomain converts a domain Company to its persistence model.
func CompanyModelFromDomain(c *masterdata.Company) *CompanyModel {
	m := &CompanyModel{
		Name:          c.Name,
		Code:          c.Code,
		Address:       c.Address,
		Phone:         c.Phone,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		GSTIN:         c.GSTIN,
		CurrencyID:    c.CurrencyID,
		Active:        c.Active,
	}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	TenantAggregateModel
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_customer_company_code,priority:1"`
	Code          string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_customer_company_code,priority:2"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Address1      string    `gorm:"type:varchar(200)"`
	Address2      string    `gorm:"type:varchar(200)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	Country       string    `gorm:"type:varchar(100)"`
	Pincode       string    `gorm:"type:varchar(20)"`
	ContactPerson string    `gorm:"type:varchar(200)"`
	Phone1        string    `gorm:"type:varchar(50)"`
	Phone2        string    `gorm:"type:varchar(50)"`
	Email         string    `gorm:"type:varchar(200)"`
	GSTIN         string    `gorm:"type:varchar(20)"`
	PAN           string    `gorm:"type:varchar(20)"`
	Active        bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string { return "customers" }

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *masterdata.Customer {
	return &masterdata.Customer{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Code:                m.Code,
		Name:                m.Name,
		Address1:            m.Address1,
		Address2:            m.Address2,
		City:                m.City,
		State:               m.State,
		Country:             m.Country,
		Pincode:             m.Pincode,
		ContactPerson:       m.ContactPerson,
		Phone1:              m.Phone1,
		Phone2:              m.Phone2,
		Email:               m.Email,
		GSTIN:               m.GSTIN,
		PAN:                 m.PAN,
		Active:              m.Active,
	}
}

// CustomerModelFromDomain converts a domain Customer to its persistence model.
func CustomerModelFromDomain(c *masterdata.Customer) *CustomerModel {
	m := &CustomerModel{
		CompanyID:     c.CompanyID,
		Code:          c.Code,
		Name:          c.Name,
		Address1:      c.Address1,
		Address2:      c.Address2,
		City:          c.City,
		State:         c.State,
		Country:       c.Country,
		Pincode:       c.Pincode,
		ContactPerson: c.ContactPerson,
		Phone1:        c.Phone1,
		Phone2:        c.Phone2,
		Email:         c.Email,
		GSTIN:         c.GSTIN,
		PAN:           c.PAN,
		Active:        c.Active,
	}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// ProductModel is the persistence model for the Product aggregate root.
type ProductModel struct {
	TenantAggregateModel
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_product_company_code,priority:1"`
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_product_company_code,priority:2"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Specification string          `gorm:"type:text"`
	SellingUOMID  uuid.UUID       `gorm:"type:uuid;not null"`
	PurchaseUOMID uuid.UUID       `gorm:"type:uuid"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CostPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	HSNCode       string          `gorm:"type:varchar(20)"`
	TaxHeaderID   uuid.UUID       `gorm:"type:uuid"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string { return "products" }

// ToDomain converts the persistence model to a domain Product.
func (m *ProductModel) ToDomain() *masterdata.Product {
	return &masterdata.Product{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Code:                m.Code,
		Name:                m.Name,
		Specification:       m.Specification,
		SellingUOMID:        m.SellingUOMID,
		PurchaseUOMID:       m.PurchaseUOMID,
		SellingPrice:        m.SellingPrice,
		CostPrice:           m.CostPrice,
		HSNCode:             m.HSNCode,
		TaxHeaderID:         m.TaxHeaderID,
		TaxRate:             m.TaxRate,
		Active:              m.Active,
	}
}

// ProductModelFromDomain converts a domain Product to its persistence model.
func ProductModelFromDomain(p *masterdata.Product) *ProductModel {
	m := &ProductModel{
		CompanyID:     p.CompanyID,
		Code:          p.Code,
		Name:          p.Name,
		Specification: p.Specification,
		SellingUOMID:  p.SellingUOMID,
		PurchaseUOMID: p.PurchaseUOMID,
		SellingPrice:  p.SellingPrice,
		CostPrice:     p.CostPrice,
		HSNCode:       p.HSNCode,
		TaxHeaderID:   p.TaxHeaderID,
		TaxRate:       p.TaxRate,
		Active:        p.Active,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}

// CurrencyModel is the persistence model for the Currency aggregate root.
type CurrencyModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(100);not null"`
	Code   string `gorm:"type:varchar(10);not null;uniqueIndex:idx_currency_tenant_code,priority:2"`
	Symbol string `gorm:"type:varchar(10)"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CurrencyModel) TableName() string { return "currencies" }

// ToDomain converts the persistence model to a domain Currency.
func (m *CurrencyModel) ToDomain() *masterdata.Currency {
	return &masterdata.Currency{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Code:                m.Code,
		Symbol:              m.Symbol,
		Active:              m.Active,
	}
}

// CurrencyModelFromDomain converts a domain Currency to its persistence model.
func CurrencyModelFromDomain(c *masterdata.Currency) *CurrencyModel {
	m := &CurrencyModel{
		Name:   c.Name,
		Code:   c.Code,
		Symbol: c.Symbol,
		Active: c.Active,
	}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// UOMModel is the persistence model for the UOM aggregate root.
type UOMModel struct {
	TenantAggregateModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_uom_company_code,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Code      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_uom_company_code,priority:2"`
	Active    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UOMModel) TableName() string { return "uoms" }

// ToDomain converts the persistence model to a domain UOM.
func (m *UOMModel) ToDomain() *masterdata.UOM {
	return &masterdata.UOM{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Name:                m.Name,
		Code:                m.Code,
		Active:              m.Active,
	}
}

// UOMModelFromDomain converts a domain UOM to its persistence model.
func UOMModelFromDomain(u *masterdata.UOM) *UOMModel {
	m := &UOMModel{
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Code:      u.Code,
		Active:    u.Active,
	}
	m.FromDomainTenantAggregateRoot(u.TenantAggregateRoot)
	return m
}

// HSNModel is the persistence model for the HSN aggregate root.
type HSNModel struct {
	TenantAggregateModel
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_hsn_company_code,priority:1"`
	Code          string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_hsn_company_code,priority:2"`
	Description   string          `gorm:"type:text"`
	TaxHeaderID   uuid.UUID       `gorm:"type:uuid;not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(9,4);not null"`
	EffectiveDate time.Time       `gorm:"not null"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (HSNModel) TableName() string { return "hsn_codes" }

// ToDomain converts the persistence model to a domain HSN.
func (m *HSNModel) ToDomain() *masterdata.HSN {
	return &masterdata.HSN{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CompanyID:           m.CompanyID,
		Code:                m.Code,
		Description:         m.Description,
		TaxHeaderID:         m.TaxHeaderID,
		TaxRate:             m.TaxRate,
		EffectiveDate:       m.EffectiveDate,
		Active:              m.Active,
	}
}

// HSNModelFromDomain converts a domain HSN to its persistence model.
func HSNModelFromDomain(h *masterdata.HSN) *HSNModel {
	m := &HSNModel{
		CompanyID:     h.CompanyID,
		Code:          h.Code,
		Description:   h.Description,
		TaxHeaderID:   h.TaxHeaderID,
		TaxRate:       h.TaxRate,
		EffectiveDate: h.EffectiveDate,
		Active:        h.Active,
	}
	m.FromDomainTenantAggregateRoot(h.TenantAggregateRoot)
	return m
}

// CountryModel is the persistence model for the Country reference record.
type CountryModel struct {
	TenantAggregateModel
	Name   string `gorm:"type:varchar(100);not null"`
	Code   string `gorm:"type:varchar(10)"`
	Active bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string { return "countries" }

// ToDomain converts the persistence model to a domain Country.
func (m *CountryModel) ToDomain() *masterdata.Country {
	return &masterdata.Country{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		Code:                m.Code,
		Active:              m.Active,
	}
}

// CountryModelFromDomain converts a domain Country to its persistence model.
func CountryModelFromDomain(c *masterdata.Country) *CountryModel {
	m := &CountryModel{Name: c.Name, Code: c.Code, Active: c.Active}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}

// StateModel is the persistence model for the State reference record.
type StateModel struct {
	TenantAggregateModel
	CountryID uuid.UUID `gorm:"type:uuid;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Code      string    `gorm:"type:varchar(10)"`
	Active    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string { return "states" }

// ToDomain converts the persistence model to a domain State.
func (m *StateModel) ToDomain() *masterdata.State {
	return &masterdata.State{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		CountryID:           m.CountryID,
		Name:                m.Name,
		Code:                m.Code,
		Active:              m.Active,
	}
}

// StateModelFromDomain converts a domain State to its persistence model.
func StateModelFromDomain(s *masterdata.State) *StateModel {
	m := &StateModel{CountryID: s.CountryID, Name: s.Name, Code: s.Code, Active: s.Active}
	m.FromDomainTenantAggregateRoot(s.TenantAggregateRoot)
	return m
}

// CityModel is the persistence model for the City reference record.
type CityModel struct {
	TenantAggregateModel
	StateID uuid.UUID `gorm:"type:uuid;index"`
	Name    string    `gorm:"type:varchar(100);not null"`
	Active  bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string { return "cities" }

// ToDomain converts the persistence model to a domain City.
func (m *CityModel) ToDomain() *masterdata.City {
	return &masterdata.City{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		StateID:             m.StateID,
		Name:                m.Name,
		Active:              m.Active,
	}
}

// CityModelFromDomain converts a domain City to its persistence model.
func CityModelFromDomain(c *masterdata.City) *CityModel {
	m := &CityModel{StateID: c.StateID, Name: c.Name, Active: c.Active}
	m.FromDomainTenantAggregateRoot(c.TenantAggregateRoot)
	return m
}
