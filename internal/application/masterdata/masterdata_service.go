package masterdata

import (
	"context"

	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MasterDataService provides CRUD over the reference records documents
// link to: companies, customers, products, currencies, units of measure,
// HSN codes and the geography chain. Codes are unique within their scope;
// deletes are blocked by the persistence layer while documents reference
// the record.
type MasterDataService struct {
	companies  masterdata.CompanyRepository
	customers  masterdata.CustomerRepository
	products   masterdata.ProductRepository
	currencies masterdata.CurrencyRepository
	uoms       masterdata.UOMRepository
	hsns       masterdata.HSNRepository
	geo        masterdata.GeographyRepository
}

// NewMasterDataService creates a new MasterDataService.
func NewMasterDataService(
	companies masterdata.CompanyRepository,
	customers masterdata.CustomerRepository,
	products masterdata.ProductRepository,
	currencies masterdata.CurrencyRepository,
	uoms masterdata.UOMRepository,
	hsns masterdata.HSNRepository,
	geo masterdata.GeographyRepository,
) *MasterDataService {
	return &MasterDataService{
		companies:  companies,
		customers:  customers,
		products:   products,
		currencies: currencies,
		uoms:       uoms,
		hsns:       hsns,
		geo:        geo,
	}
}

// ===================== Companies =====================

func (s *MasterDataService) CreateCompany(ctx context.Context, tenantID uuid.UUID, actor string, fields masterdata.CompanyFields) (*masterdata.Company, error) {
	existing, err := s.companies.FindByCode(ctx, tenantID, fields.Code)
	if err != nil {
		return nil, shared.NewInternalError("check company code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("company code %s already exists", fields.Code)
	}
	c, err := masterdata.NewCompany(tenantID, actor, fields)
	if err != nil {
		return nil, err
	}
	if err := s.companies.Create(ctx, c); err != nil {
		return nil, shared.NewInternalError("create company", err)
	}
	return c, nil
}

func (s *MasterDataService) GetCompany(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Company, error) {
	c, err := s.companies.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find company", err)
	}
	if c == nil {
		return nil, shared.NewNotFoundError("company")
	}
	return c, nil
}

func (s *MasterDataService) ListCompanies(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[masterdata.Company], error) {
	companies, err := s.companies.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list companies", err)
	}
	total, err := s.companies.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count companies", err)
	}
	return shared.NewPaginated(companies, total, filter), nil
}

func (s *MasterDataService) UpdateCompany(ctx context.Context, tenantID, id uuid.UUID, actor string, fields masterdata.CompanyFields, active bool) (*masterdata.Company, error) {
	c, err := s.GetCompany(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if fields.Code != c.Code {
		existing, err := s.companies.FindByCode(ctx, tenantID, fields.Code)
		if err != nil {
			return nil, shared.NewInternalError("check company code", err)
		}
		if existing != nil && existing.ID != c.ID {
			return nil, shared.NewAlreadyExistsError("company code %s already exists", fields.Code)
		}
	}
	if err := c.Update(actor, fields, active); err != nil {
		return nil, err
	}
	if err := s.companies.Update(ctx, c); err != nil {
		return nil, shared.NewInternalError("update company", err)
	}
	return c, nil
}

func (s *MasterDataService) DeleteCompany(ctx context.Context, tenantID, id uuid.UUID) error {
	c, err := s.GetCompany(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.companies.Delete(ctx, tenantID, c.ID)
}

// ===================== Customers =====================

func (s *MasterDataService) CreateCustomer(ctx context.Context, tenantID uuid.UUID, actor string, companyID uuid.UUID, fields masterdata.CustomerFields) (*masterdata.Customer, error) {
	if _, err := s.GetCompany(ctx, tenantID, companyID); err != nil {
		return nil, err
	}
	existing, err := s.customers.FindByCode(ctx, tenantID, companyID, fields.Code)
	if err != nil {
		return nil, shared.NewInternalError("check customer code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("customer code %s already exists", fields.Code)
	}
	c, err := masterdata.NewCustomer(tenantID, actor, companyID, fields)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, shared.NewInternalError("create customer", err)
	}
	return c, nil
}

func (s *MasterDataService) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Customer, error) {
	c, err := s.customers.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find customer", err)
	}
	if c == nil {
		return nil, shared.NewNotFoundError("customer")
	}
	return c, nil
}

func (s *MasterDataService) ListCustomers(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[masterdata.Customer], error) {
	customers, err := s.customers.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list customers", err)
	}
	total, err := s.customers.CountForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count customers", err)
	}
	return shared.NewPaginated(customers, total, filter), nil
}

func (s *MasterDataService) UpdateCustomer(ctx context.Context, tenantID, id uuid.UUID, actor string, fields masterdata.CustomerFields, active bool) (*masterdata.Customer, error) {
	c, err := s.GetCustomer(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if fields.Code != c.Code {
		existing, err := s.customers.FindByCode(ctx, tenantID, c.CompanyID, fields.Code)
		if err != nil {
			return nil, shared.NewInternalError("check customer code", err)
		}
		if existing != nil && existing.ID != c.ID {
			return nil, shared.NewAlreadyExistsError("customer code %s already exists", fields.Code)
		}
	}
	if err := c.Update(actor, fields, active); err != nil {
		return nil, err
	}
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, shared.NewInternalError("update customer", err)
	}
	return c, nil
}

func (s *MasterDataService) DeleteCustomer(ctx context.Context, tenantID, id uuid.UUID) error {
	c, err := s.GetCustomer(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.customers.Delete(ctx, tenantID, c.ID)
}

// ===================== Products =====================

func (s *MasterDataService) CreateProduct(ctx context.Context, tenantID uuid.UUID, actor string, companyID uuid.UUID, fields masterdata.ProductFields) (*masterdata.Product, error) {
	if _, err := s.GetCompany(ctx, tenantID, companyID); err != nil {
		return nil, err
	}
	existing, err := s.products.FindByCode(ctx, tenantID, companyID, fields.Code)
	if err != nil {
		return nil, shared.NewInternalError("check product code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("product code %s already exists", fields.Code)
	}
	p, err := masterdata.NewProduct(tenantID, actor, companyID, fields)
	if err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, shared.NewInternalError("create product", err)
	}
	return p, nil
}

func (s *MasterDataService) GetProduct(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Product, error) {
	p, err := s.products.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find product", err)
	}
	if p == nil {
		return nil, shared.NewNotFoundError("product")
	}
	return p, nil
}

func (s *MasterDataService) ListProducts(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[masterdata.Product], error) {
	products, err := s.products.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list products", err)
	}
	total, err := s.products.CountForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count products", err)
	}
	return shared.NewPaginated(products, total, filter), nil
}

func (s *MasterDataService) UpdateProduct(ctx context.Context, tenantID, id uuid.UUID, actor string, fields masterdata.ProductFields, active bool) (*masterdata.Product, error) {
	p, err := s.GetProduct(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := p.Update(actor, fields, active); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, shared.NewInternalError("update product", err)
	}
	return p, nil
}

func (s *MasterDataService) DeleteProduct(ctx context.Context, tenantID, id uuid.UUID) error {
	p, err := s.GetProduct(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.products.Delete(ctx, tenantID, p.ID)
}

// ===================== Currencies =====================

func (s *MasterDataService) CreateCurrency(ctx context.Context, tenantID uuid.UUID, actor, name, code, symbol string) (*masterdata.Currency, error) {
	existing, err := s.currencies.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, shared.NewInternalError("check currency code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("currency code %s already exists", code)
	}
	c, err := masterdata.NewCurrency(tenantID, actor, name, code, symbol)
	if err != nil {
		return nil, err
	}
	if err := s.currencies.Create(ctx, c); err != nil {
		return nil, shared.NewInternalError("create currency", err)
	}
	return c, nil
}

func (s *MasterDataService) GetCurrency(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Currency, error) {
	c, err := s.currencies.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find currency", err)
	}
	if c == nil {
		return nil, shared.NewNotFoundError("currency")
	}
	return c, nil
}

func (s *MasterDataService) ListCurrencies(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Currency, error) {
	currencies, err := s.currencies.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list currencies", err)
	}
	return currencies, nil
}

func (s *MasterDataService) UpdateCurrency(ctx context.Context, tenantID, id uuid.UUID, actor, name, code, symbol string, active bool) (*masterdata.Currency, error) {
	c, err := s.GetCurrency(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Update(actor, name, code, symbol, active); err != nil {
		return nil, err
	}
	if err := s.currencies.Update(ctx, c); err != nil {
		return nil, shared.NewInternalError("update currency", err)
	}
	return c, nil
}

func (s *MasterDataService) DeleteCurrency(ctx context.Context, tenantID, id uuid.UUID) error {
	c, err := s.GetCurrency(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.currencies.Delete(ctx, tenantID, c.ID)
}

// ===================== Units of measure =====================

func (s *MasterDataService) CreateUOM(ctx context.Context, tenantID uuid.UUID, actor string, companyID uuid.UUID, name, code string) (*masterdata.UOM, error) {
	if _, err := s.GetCompany(ctx, tenantID, companyID); err != nil {
		return nil, err
	}
	existing, err := s.uoms.FindByCode(ctx, tenantID, companyID, code)
	if err != nil {
		return nil, shared.NewInternalError("check uom code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("uom code %s already exists", code)
	}
	u, err := masterdata.NewUOM(tenantID, actor, companyID, name, code)
	if err != nil {
		return nil, err
	}
	if err := s.uoms.Create(ctx, u); err != nil {
		return nil, shared.NewInternalError("create uom", err)
	}
	return u, nil
}

func (s *MasterDataService) GetUOM(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.UOM, error) {
	u, err := s.uoms.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find uom", err)
	}
	if u == nil {
		return nil, shared.NewNotFoundError("uom")
	}
	return u, nil
}

func (s *MasterDataService) ListUOMs(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.UOM, error) {
	uoms, err := s.uoms.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list uoms", err)
	}
	return uoms, nil
}

func (s *MasterDataService) UpdateUOM(ctx context.Context, tenantID, id uuid.UUID, actor, name, code string, active bool) (*masterdata.UOM, error) {
	u, err := s.GetUOM(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := u.Update(actor, name, code, active); err != nil {
		return nil, err
	}
	if err := s.uoms.Update(ctx, u); err != nil {
		return nil, shared.NewInternalError("update uom", err)
	}
	return u, nil
}

func (s *MasterDataService) DeleteUOM(ctx context.Context, tenantID, id uuid.UUID) error {
	u, err := s.GetUOM(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.uoms.Delete(ctx, tenantID, u.ID)
}

// ===================== HSN codes =====================

func (s *MasterDataService) CreateHSN(ctx context.Context, tenantID uuid.UUID, actor string, companyID uuid.UUID, fields masterdata.HSNFields) (*masterdata.HSN, error) {
	if _, err := s.GetCompany(ctx, tenantID, companyID); err != nil {
		return nil, err
	}
	existing, err := s.hsns.FindByCode(ctx, tenantID, companyID, fields.Code)
	if err != nil {
		return nil, shared.NewInternalError("check hsn code", err)
	}
	if existing != nil {
		return nil, shared.NewAlreadyExistsError("hsn code %s already exists", fields.Code)
	}
	h, err := masterdata.NewHSN(tenantID, actor, companyID, fields)
	if err != nil {
		return nil, err
	}
	if err := s.hsns.Create(ctx, h); err != nil {
		return nil, shared.NewInternalError("create hsn", err)
	}
	return h, nil
}

func (s *MasterDataService) GetHSN(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.HSN, error) {
	h, err := s.hsns.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find hsn", err)
	}
	if h == nil {
		return nil, shared.NewNotFoundError("hsn")
	}
	return h, nil
}

func (s *MasterDataService) ListHSNs(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.HSN, error) {
	hsns, err := s.hsns.FindAllForCompany(ctx, tenantID, companyID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list hsns", err)
	}
	return hsns, nil
}

func (s *MasterDataService) UpdateHSN(ctx context.Context, tenantID, id uuid.UUID, actor string, fields masterdata.HSNFields, active bool) (*masterdata.HSN, error) {
	h, err := s.GetHSN(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := h.Update(actor, fields, active); err != nil {
		return nil, err
	}
	if err := s.hsns.Update(ctx, h); err != nil {
		return nil, shared.NewInternalError("update hsn", err)
	}
	return h, nil
}

func (s *MasterDataService) DeleteHSN(ctx context.Context, tenantID, id uuid.UUID) error {
	h, err := s.GetHSN(ctx, tenantID, id)
	if err != nil {
		return err
	}
	return s.hsns.Delete(ctx, tenantID, h.ID)
}

// ===================== Geography =====================

func (s *MasterDataService) CreateCountry(ctx context.Context, tenantID uuid.UUID, actor, name, code string) (*masterdata.Country, error) {
	c, err := masterdata.NewCountry(tenantID, actor, name, code)
	if err != nil {
		return nil, err
	}
	if err := s.geo.CreateCountry(ctx, c); err != nil {
		return nil, shared.NewInternalError("create country", err)
	}
	return c, nil
}

func (s *MasterDataService) ListCountries(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Country, error) {
	countries, err := s.geo.FindAllCountries(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list countries", err)
	}
	return countries, nil
}

func (s *MasterDataService) DeleteCountry(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.geo.DeleteCountry(ctx, tenantID, id)
}

func (s *MasterDataService) CreateState(ctx context.Context, tenantID uuid.UUID, actor string, countryID uuid.UUID, name, code string) (*masterdata.State, error) {
	if countryID != uuid.Nil {
		country, err := s.geo.FindCountryByID(ctx, tenantID, countryID)
		if err != nil {
			return nil, shared.NewInternalError("check country", err)
		}
		if country == nil {
			return nil, shared.NewValidationError("country does not exist")
		}
	}
	st, err := masterdata.NewState(tenantID, actor, countryID, name, code)
	if err != nil {
		return nil, err
	}
	if err := s.geo.CreateState(ctx, st); err != nil {
		return nil, shared.NewInternalError("create state", err)
	}
	return st, nil
}

func (s *MasterDataService) ListStates(ctx context.Context, tenantID, countryID uuid.UUID, filter shared.Filter) ([]masterdata.State, error) {
	states, err := s.geo.FindStatesByCountry(ctx, tenantID, countryID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list states", err)
	}
	return states, nil
}

func (s *MasterDataService) DeleteState(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.geo.DeleteState(ctx, tenantID, id)
}

func (s *MasterDataService) CreateCity(ctx context.Context, tenantID uuid.UUID, actor string, stateID uuid.UUID, name string) (*masterdata.City, error) {
	if stateID != uuid.Nil {
		st, err := s.geo.FindStateByID(ctx, tenantID, stateID)
		if err != nil {
			return nil, shared.NewInternalError("check state", err)
		}
		if st == nil {
			return nil, shared.NewValidationError("state does not exist")
		}
	}
	c, err := masterdata.NewCity(tenantID, actor, stateID, name)
	if err != nil {
		return nil, err
	}
	if err := s.geo.CreateCity(ctx, c); err != nil {
		return nil, shared.NewInternalError("create city", err)
	}
	return c, nil
}

func (s *MasterDataService) ListCities(ctx context.Context, tenantID, stateID uuid.UUID, filter shared.Filter) ([]masterdata.City, error) {
	cities, err := s.geo.FindCitiesByState(ctx, tenantID, stateID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list cities", err)
	}
	return cities, nil
}

func (s *MasterDataService) DeleteCity(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.geo.DeleteCity(ctx, tenantID, id)
}
