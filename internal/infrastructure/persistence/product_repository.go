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

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByIDForTenant finds a product by ID for a specific tenant
func (r *GormProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Product, error) {
	var model models.ProductModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a product by its code within a company
func (r *GormProductRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.Product, error) {
	var model models.ProductModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND company_id = ? AND tenant_id = ?", code, companyID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all products of a company with filtering
func (r *GormProductRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.Product, error) {
	var productModels []models.ProductModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "created_at")

	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]masterdata.Product, len(productModels))
	for i, model := range productModels {
		products[i] = *model.ToDomain()
	}
	return products, nil
}

// CountForCompany counts products of a company
func (r *GormProductRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a new product
func (r *GormProductRepository) Create(ctx context.Context, p *masterdata.Product) error {
	model := models.ProductModelFromDomain(p)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "product")
}

// Update persists changes to a product
func (r *GormProductRepository) Update(ctx context.Context, p *masterdata.Product) error {
	model := models.ProductModelFromDomain(p)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "product")
}

// Delete removes a product. Rows referenced by invoice lines surface as
// REFERENCE_IN_USE.
func (r *GormProductRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.ProductModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "product")
}

var _ masterdata.ProductRepository = (*GormProductRepository)(nil)
