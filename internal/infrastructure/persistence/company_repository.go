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

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByIDForTenant finds a company by ID for a specific tenant
func (r *GormCompanyRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Company, error) {
	var model models.CompanyModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a company by its code for a tenant
func (r *GormCompanyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*masterdata.Company, error) {
	var model models.CompanyModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND tenant_id = ?", code, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all companies for a tenant with filtering
func (r *GormCompanyRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]masterdata.Company, error) {
	var companyModels []models.CompanyModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "created_at")

	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}
	companies := make([]masterdata.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// CountForTenant counts companies for a tenant
func (r *GormCompanyRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.CompanyModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a new company
func (r *GormCompanyRepository) Create(ctx context.Context, c *masterdata.Company) error {
	model := models.CompanyModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "company")
}

// Update persists changes to a company
func (r *GormCompanyRepository) Update(ctx context.Context, c *masterdata.Company) error {
	model := models.CompanyModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "company")
}

// Delete removes a company. Rows referenced by documents or master data
// surface as REFERENCE_IN_USE.
func (r *GormCompanyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.CompanyModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "company")
}

var _ masterdata.CompanyRepository = (*GormCompanyRepository)(nil)
