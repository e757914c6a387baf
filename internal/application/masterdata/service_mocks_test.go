package masterdata

import (
	"context"

	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Company, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Company, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Company, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Company), args.Error(1)
}

func (m *MockCompanyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, c *masterdata.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, c *masterdata.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.Customer, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]masterdata.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *masterdata.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *masterdata.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Currency, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Create(ctx context.Context, c *masterdata.Currency) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Update(ctx context.Context, c *masterdata.Currency) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockGeographyRepository struct {
	mock.Mock
}

func (m *MockGeographyRepository) FindCountryByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Country, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Country), args.Error(1)
}

func (m *MockGeographyRepository) FindAllCountries(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Country, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]masterdata.Country), args.Error(1)
}

func (m *MockGeographyRepository) CreateCountry(ctx context.Context, c *masterdata.Country) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGeographyRepository) UpdateCountry(ctx context.Context, c *masterdata.Country) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGeographyRepository) DeleteCountry(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockGeographyRepository) FindStateByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.State, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.State), args.Error(1)
}

func (m *MockGeographyRepository) FindStatesByCountry(ctx context.Context, tenantID, countryID uuid.UUID, filter shared.Filter) ([]masterdata.State, error) {
	args := m.Called(ctx, tenantID, countryID, filter)
	return args.Get(0).([]masterdata.State), args.Error(1)
}

func (m *MockGeographyRepository) CreateState(ctx context.Context, s *masterdata.State) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockGeographyRepository) UpdateState(ctx context.Context, s *masterdata.State) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockGeographyRepository) DeleteState(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockGeographyRepository) FindCityByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.City, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.City), args.Error(1)
}

func (m *MockGeographyRepository) FindCitiesByState(ctx context.Context, tenantID, stateID uuid.UUID, filter shared.Filter) ([]masterdata.City, error) {
	args := m.Called(ctx, tenantID, stateID, filter)
	return args.Get(0).([]masterdata.City), args.Error(1)
}

func (m *MockGeographyRepository) CreateCity(ctx context.Context, c *masterdata.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGeographyRepository) UpdateCity(ctx context.Context, c *masterdata.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockGeographyRepository) DeleteCity(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.Product, error) {
	args := m.Called(ctx, tenantID, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.Product, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]masterdata.Product), args.Error(1)
}

func (m *MockProductRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p *masterdata.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *masterdata.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockUOMRepository struct {
	mock.Mock
}

func (m *MockUOMRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.UOM, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.UOM), args.Error(1)
}

func (m *MockUOMRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.UOM, error) {
	args := m.Called(ctx, tenantID, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.UOM), args.Error(1)
}

func (m *MockUOMRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.UOM, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]masterdata.UOM), args.Error(1)
}

func (m *MockUOMRepository) Create(ctx context.Context, u *masterdata.UOM) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUOMRepository) Update(ctx context.Context, u *masterdata.UOM) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUOMRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockHSNRepository struct {
	mock.Mock
}

func (m *MockHSNRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.HSN, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.HSN), args.Error(1)
}

func (m *MockHSNRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.HSN, error) {
	args := m.Called(ctx, tenantID, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*masterdata.HSN), args.Error(1)
}

func (m *MockHSNRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.HSN, error) {
	args := m.Called(ctx, tenantID, companyID, filter)
	return args.Get(0).([]masterdata.HSN), args.Error(1)
}

func (m *MockHSNRepository) Create(ctx context.Context, h *masterdata.HSN) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHSNRepository) Update(ctx context.Context, h *masterdata.HSN) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHSNRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
