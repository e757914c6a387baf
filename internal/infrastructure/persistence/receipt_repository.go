package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormReceiptRepository implements billing.ReceiptRepository using GORM
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GormReceiptRepository
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// FindByIDForTenant finds a receipt with its allocations by ID
func (r *GormReceiptRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Receipt, error) {
	var model models.ReceiptModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Allocations", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds receipts of a company with filtering
func (r *GormReceiptRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]billing.Receipt, error) {
	var receiptModels []models.ReceiptModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"number ILIKE ? OR transaction_no ILIKE ? OR customer_id IN (SELECT id FROM customers WHERE name ILIKE ?)",
			pattern, pattern, pattern)
	}
	query = applyListOptions(query, filter, ReceiptSortFields, "receipt_date")

	if err := query.
		Preload("Allocations", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		Find(&receiptModels).Error; err != nil {
		return nil, err
	}
	receipts := make([]billing.Receipt, len(receiptModels))
	for i, model := range receiptModels {
		receipts[i] = *model.ToDomain()
	}
	return receipts, nil
}

// CountForCompany counts receipts of a company
func (r *GormReceiptRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.ReceiptModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"number ILIKE ? OR transaction_no ILIKE ? OR customer_id IN (SELECT id FROM customers WHERE name ILIKE ?)",
			pattern, pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists the header and its allocation rows in one transaction
func (r *GormReceiptRepository) Create(ctx context.Context, rec *billing.Receipt) error {
	model := models.ReceiptModelFromDomain(rec)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "receipt")
}

// Update persists header changes, upserts the receipt's allocation rows
// and deletes the rows named in removedAllocationIDs, all in one
// transaction. The allocation set on the aggregate is authoritative.
func (r *GormReceiptRepository) Update(ctx context.Context, rec *billing.Receipt, removedAllocationIDs []uuid.UUID) error {
	model := models.ReceiptModelFromDomain(rec)
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Allocations").Save(model).Error; err != nil {
			return translateWriteError(err, "receipt")
		}
		for i := range model.Allocations {
			if err := tx.Save(&model.Allocations[i]).Error; err != nil {
				return translateWriteError(err, "receipt allocation")
			}
		}
		if len(removedAllocationIDs) > 0 {
			if err := tx.Delete(&models.ReceiptAllocationModel{},
				"id IN ? AND receipt_id = ?", removedAllocationIDs, rec.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the allocations first, then the header, in one
// transaction.
func (r *GormReceiptRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ReceiptAllocationModel{}, "receipt_id = ?", id).Error; err != nil {
			return err
		}
		return translateWriteError(
			tx.Delete(&models.ReceiptModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "receipt")
	})
}

var _ billing.ReceiptRepository = (*GormReceiptRepository)(nil)
