package masterdata

import (
	"context"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyRepository persists companies.
type CompanyRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Company, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Company, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Company, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	Create(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CustomerRepository persists customers under a company.
type CustomerRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Customer, error)
	FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*Customer, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]Customer, error)
	CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// ProductRepository persists products under a company.
type ProductRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*Product, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]Product, error)
	CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// CurrencyRepository persists tenant-level currencies.
type CurrencyRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Currency, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Currency, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Currency, error)
	Create(ctx context.Context, c *Currency) error
	Update(ctx context.Context, c *Currency) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// UOMRepository persists units of measure under a company.
type UOMRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*UOM, error)
	FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*UOM, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]UOM, error)
	Create(ctx context.Context, u *UOM) error
	Update(ctx context.Context, u *UOM) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// HSNRepository persists HSN tax mappings under a company.
type HSNRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*HSN, error)
	FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*HSN, error)
	FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]HSN, error)
	Create(ctx context.Context, h *HSN) error
	Update(ctx context.Context, h *HSN) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

// GeographyRepository persists the country/state/city reference chain.
type GeographyRepository interface {
	FindCountryByID(ctx context.Context, tenantID, id uuid.UUID) (*Country, error)
	FindAllCountries(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Country, error)
	CreateCountry(ctx context.Context, c *Country) error
	UpdateCountry(ctx context.Context, c *Country) error
	DeleteCountry(ctx context.Context, tenantID, id uuid.UUID) error

	FindStateByID(ctx context.Context, tenantID, id uuid.UUID) (*State, error)
	FindStatesByCountry(ctx context.Context, tenantID, countryID uuid.UUID, filter shared.Filter) ([]State, error)
	CreateState(ctx context.Context, s *State) error
	UpdateState(ctx context.Context, s *State) error
	DeleteState(ctx context.Context, tenantID, id uuid.UUID) error

	FindCityByID(ctx context.Context, tenantID, id uuid.UUID) (*City, error)
	FindCitiesByState(ctx context.Context, tenantID, stateID uuid.UUID, filter shared.Filter) ([]City, error)
	CreateCity(ctx context.Context, c *City) error
	UpdateCity(ctx context.Context, c *City) error
	DeleteCity(ctx context.Context, tenantID, id uuid.UUID) error
}
