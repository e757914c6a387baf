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

// GormUOMRepository implements UOMRepository using GORM
type GormUOMRepository struct {
	db *gorm.DB
}

// NewGormUOMRepository creates a new GormUOMRepository
func NewGormUOMRepository(db *gorm.DB) *GormUOMRepository {
	return &GormUOMRepository{db: db}
}

// FindByIDForTenant finds a unit of measure by ID for a specific tenant
func (r *GormUOMRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.UOM, error) {
	var model models.UOMModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a unit of measure by its code within a company
func (r *GormUOMRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.UOM, error) {
	var model models.UOMModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND company_id = ? AND tenant_id = ?", code, companyID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all units of measure of a company
func (r *GormUOMRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.UOM, error) {
	var uomModels []models.UOMModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "code")

	if err := query.Find(&uomModels).Error; err != nil {
		return nil, err
	}
	uoms := make([]masterdata.UOM, len(uomModels))
	for i, model := range uomModels {
		uoms[i] = *model.ToDomain()
	}
	return uoms, nil
}

// Create persists a new unit of measure
func (r *GormUOMRepository) Create(ctx context.Context, u *masterdata.UOM) error {
	model := models.UOMModelFromDomain(u)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "uom")
}

// Update persists changes to a unit of measure
func (r *GormUOMRepository) Update(ctx context.Context, u *masterdata.UOM) error {
	model := models.UOMModelFromDomain(u)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "uom")
}

// Delete removes a unit of measure. Rows referenced by products or
// invoice lines surface as REFERENCE_IN_USE.
func (r *GormUOMRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.UOMModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "uom")
}

var _ masterdata.UOMRepository = (*GormUOMRepository)(nil)
