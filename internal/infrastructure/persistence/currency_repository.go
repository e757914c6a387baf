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

// GormCurrencyRepository implements CurrencyRepository using GORM
type GormCurrencyRepository struct {
	db *gorm.DB
}

// NewGormCurrencyRepository creates a new GormCurrencyRepository
func NewGormCurrencyRepository(db *gorm.DB) *GormCurrencyRepository {
	return &GormCurrencyRepository{db: db}
}

// FindByIDForTenant finds a currency by ID for a specific tenant
func (r *GormCurrencyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Currency, error) {
	var model models.CurrencyModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a currency by its code for a tenant
func (r *GormCurrencyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Currency, error) {
	var model models.CurrencyModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND tenant_id = ?", code, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all currencies for a tenant
func (r *GormCurrencyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Currency, error) {
	var currencyModels []models.CurrencyModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "code")

	if err := query.Find(&currencyModels).Error; err != nil {
		return nil, err
	}
	currencies := make([]masterdata.Currency, len(currencyModels))
	for i, model := range currencyModels {
		currencies[i] = *model.ToDomain()
	}
	return currencies, nil
}

// Create persists a new currency
func (r *GormCurrencyRepository) Create(ctx context.Context, c *masterdata.Currency) error {
	model := models.CurrencyModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "currency")
}

// Update persists changes to a currency
func (r *GormCurrencyRepository) Update(ctx context.Context, c *masterdata.Currency) error {
	model := models.CurrencyModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "currency")
}

// Delete removes a currency. Rows referenced by companies or documents
// surface as REFERENCE_IN_USE.
func (r *GormCurrencyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.CurrencyModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "currency")
}

var _ masterdata.CurrencyRepository = (*GormCurrencyRepository)(nil)
