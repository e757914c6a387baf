package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/domain/tax"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormTaxHeaderRepository implements tax.HeaderRepository using GORM
type GormTaxHeaderRepository struct {
	db *gorm.DB
}

// NewGormTaxHeaderRepository creates a new GormTaxHeaderRepository
func NewGormTaxHeaderRepository(db *gorm.DB) *GormTaxHeaderRepository {
	return &GormTaxHeaderRepository{db: db}
}

// FindByIDForTenant finds a tax header by ID for a specific tenant
func (r *GormTaxHeaderRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*tax.Header, error) {
	var model models.TaxHeaderModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Slabs", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a tax header by name within a company
func (r *GormTaxHeaderRepository) FindByName(ctx context.Context, tenantID, companyID uuid.UUID, name string) (*tax.Header, error) {
	var model models.TaxHeaderModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Slabs", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		First(&model, "name = ? AND company_id = ? AND tenant_id = ?", name, companyID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds tax headers of a company with filtering
func (r *GormTaxHeaderRepository) FindAllForTenant(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]tax.Header, error) {
	var headerModels []models.TaxHeaderModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, TaxHeaderSortFields, "name")

	if err := query.
		Preload("Slabs", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		Find(&headerModels).Error; err != nil {
		return nil, err
	}
	headers := make([]tax.Header, len(headerModels))
	for i, model := range headerModels {
		headers[i] = *model.ToDomain()
	}
	return headers, nil
}

// CountForTenant counts tax headers of a company
func (r *GormTaxHeaderRepository) CountForTenant(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.TaxHeaderModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists the header and its slab rows in one transaction
func (r *GormTaxHeaderRepository) Create(ctx context.Context, h *tax.Header) error {
	model := models.TaxHeaderModelFromDomain(h)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "tax header")
}

// Update persists header changes and replaces all stored slab rows with
// the header's current slab set, in one transaction.
func (r *GormTaxHeaderRepository) Update(ctx context.Context, h *tax.Header) error {
	model := models.TaxHeaderModelFromDomain(h)
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Slabs").Save(model).Error; err != nil {
			return translateWriteError(err, "tax header")
		}
		if err := tx.Delete(&models.TaxSlabModel{}, "tax_header_id = ?", h.ID).Error; err != nil {
			return err
		}
		if len(model.Slabs) == 0 {
			return nil
		}
		return translateWriteError(tx.Create(&model.Slabs).Error, "tax slab")
	})
}

// Delete removes a tax header and its slabs. Headers referenced by
// products, HSN codes or invoice lines surface as REFERENCE_IN_USE.
func (r *GormTaxHeaderRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TaxSlabModel{}, "tax_header_id = ?", id).Error; err != nil {
			return err
		}
		return translateWriteError(
			tx.Delete(&models.TaxHeaderModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "tax header")
	})
}

var _ tax.HeaderRepository = (*GormTaxHeaderRepository)(nil)
