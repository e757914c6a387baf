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

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByIDForTenant finds a customer by ID for a specific tenant
func (r *GormCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*masterdata.Customer, error) {
	var model models.CustomerModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a customer by its code within a company
func (r *GormCustomerRepository) FindByCode(ctx context.Context, tenantID, companyID uuid.UUID, code string) (*masterdata.Customer, error) {
	var model models.CustomerModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		First(&model, "code = ? AND company_id = ? AND tenant_id = ?", code, companyID, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds all customers of a company with filtering
func (r *GormCustomerRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]masterdata.Customer, error) {
	var customerModels []models.CustomerModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, CodeNameSortFields, "created_at")

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}
	customers := make([]masterdata.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// CountForCompany counts customers of a company
func (r *GormCustomerRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, c *masterdata.Customer) error {
	model := models.CustomerModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "customer")
}

// Update persists changes to a customer
func (r *GormCustomerRepository) Update(ctx context.Context, c *masterdata.Customer) error {
	model := models.CustomerModelFromDomain(c)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Save(model).Error, "customer")
}

// Delete removes a customer. Rows referenced by documents surface as
// REFERENCE_IN_USE.
func (r *GormCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).
			Delete(&models.CustomerModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "customer")
}

var _ masterdata.CustomerRepository = (*GormCustomerRepository)(nil)
