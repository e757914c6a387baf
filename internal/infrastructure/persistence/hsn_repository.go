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

// GormHSNRepository implements HSNRepository using GORM
type GormHSNRepository struct {
	db *gorm.DB
}

// NewGormHSNRepository creates a new GormHSNRepository
func NewGormHSNRepository(db *gorm.DB) *GormHSNRepository {
	return &GormHSNRepository{db: db}
}

// FindByIDForTenant finds an HSN record by ID for a specific tenant
func (r *GormHSNRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.HSN, error) {
	var model models.HSNModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds an HSN record by its code within a company
func (r *GormHSNRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.HSN, error) {
	var model models.HSNModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND company_id = ? AND tenant_id = ?", code, companyID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all HSN records of a company
func (r *GormHSNRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.HSN, error) {
	var hsnModels []models.HSNModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("code ILIKE ? OR description ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CommonSortFields, "created_at")

	if err := query.Find(&hsnModels).Error; err != nil {
		return nil, err
	}
	records := make([]masterdata.HSN, len(hsnModels))
	for i, model := range hsnModels {
		records[i] = *model.ToDomain()
	}
	return records, nil
}

// Create persists a new HSN record
func (r *GormHSNRepository) Create(ctx context.Context, h *masterdata.HSN) error {
	model := models.HSNModelFromDomain(h)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "hsn code")
}

// Update persists changes to an HSN record
func (r *GormHSNRepository) Update(ctx context.Context, h *masterdata.HSN) error {
	model := models.HSNModelFromDomain(h)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "hsn code")
}

// Delete removes an HSN record
func (r *GormHSNRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.HSNModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "hsn code")
}

var _ masterdata.HSNRepository = (*GormHSNRepository)(nil)
