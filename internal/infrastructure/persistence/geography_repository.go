package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/masterdata"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormGeographyRepository implements GeographyRepository using GORM.
// Countries, states and cities share one repository; the three tables form
// an optional reference chain.
type GormGeographyRepository struct {
	db *gorm.DB
}

// NewGormGeographyRepository creates a new GormGeographyRepository
func NewGormGeographyRepository(db *gorm.DB) *GormGeographyRepository {
	return &GormGeographyRepository{db: db}
}

// FindCountryByID finds a country by ID for a tenant
func (r *GormGeographyRepository) FindCountryByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Country, error) {
	var model models.CountryModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllCountries lists countries for a tenant
func (r *GormGeographyRepository) FindAllCountries(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Country, error) {
	var countryModels []models.CountryModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "name")

	if err := query.Find(&countryModels).Error; err != nil {
		return nil, err
	}
	countries := make([]masterdata.Country, len(countryModels))
	for i, model := range countryModels {
		countries[i] = *model.ToDomain()
	}
	return countries, nil
}

// CreateCountry persists a new country
func (r *GormGeographyRepository) CreateCountry(ctx context.Context, c *masterdata.Country) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(models.CountryModelFromDomain(c)).Error, "country")
}

// UpdateCountry persists changes to a country
func (r *GormGeographyRepository) UpdateCountry(ctx context.Context, c *masterdata.Country) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(models.CountryModelFromDomain(c)).Error, "country")
}

// DeleteCountry removes a country. Countries referenced by states surface
// as REFERENCE_IN_USE.
func (r *GormGeographyRepository) DeleteCountry(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.CountryModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "country")
}

// FindStateByID finds a state by ID for a tenant
func (r *GormGeographyRepository) FindStateByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.State, error) {
	var model models.StateModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindStatesByCountry lists states, optionally narrowed to one country
// when countryID is non-nil.
func (r *GormGeographyRepository) FindStatesByCountry(ctx context.Context, tenantID, countryID uuid.UUID, filter shared.Filter) ([]masterdata.State, error) {
	var stateModels []models.StateModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if countryID != uuid.Nil {
		query = query.Where("country_id = ?", countryID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "name")

	if err := query.Find(&stateModels).Error; err != nil {
		return nil, err
	}
	states := make([]masterdata.State, len(stateModels))
	for i, model := range stateModels {
		states[i] = *model.ToDomain()
	}
	return states, nil
}

// CreateState persists a new state
func (r *GormGeographyRepository) CreateState(ctx context.Context, s *masterdata.State) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(models.StateModelFromDomain(s)).Error, "state")
}

// UpdateState persists changes to a state
func (r *GormGeographyRepository) UpdateState(ctx context.Context, s *masterdata.State) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(models.StateModelFromDomain(s)).Error, "state")
}

// DeleteState removes a state. States referenced by cities surface as
// REFERENCE_IN_USE.
func (r *GormGeographyRepository) DeleteState(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.StateModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "state")
}

// FindCityByID finds a city by ID for a tenant
func (r *GormGeographyRepository) FindCityByID(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.City, error) {
	var model models.CityModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindCitiesByState lists cities, optionally narrowed to one state when
// stateID is non-nil.
func (r *GormGeographyRepository) FindCitiesByState(ctx context.Context, tenantID, stateID uuid.UUID, filter shared.Filter) ([]masterdata.City, error) {
	var cityModels []models.CityModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if stateID != uuid.Nil {
		query = query.Where("state_id = ?", stateID)
	}
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&cityModels).Error; err != nil {
		return nil, err
	}
	cities := make([]masterdata.City, len(cityModels))
	for i, model := range cityModels {
		cities[i] = *model.ToDomain()
	}
	return cities, nil
}

// CreateCity persists a new city
func (r *GormGeographyRepository) CreateCity(ctx context.Context, c *masterdata.City) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(models.CityModelFromDomain(c)).Error, "city")
}

// UpdateCity persists changes to a city
func (r *GormGeographyRepository) UpdateCity(ctx context.Context, c *masterdata.City) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(models.CityModelFromDomain(c)).Error, "city")
}

// DeleteCity removes a city
func (r *GormGeographyRepository) DeleteCity(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.CityModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "city")
}

var _ masterdata.GeographyRepository = (*GormGeographyRepository)(nil)
