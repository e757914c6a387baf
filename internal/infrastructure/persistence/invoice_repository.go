package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/billing"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements billing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByIDForTenant finds an invoice with its lines by ID
func (r *GormInvoiceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	var model models.InvoiceModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForCompany finds invoices of a company with filtering
func (r *GormInvoiceRepository) FindAllForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) ([]billing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"number ILIKE ? OR reference_no ILIKE ? OR customer_id IN (SELECT id FROM customers WHERE name ILIKE ?)",
			pattern, pattern, pattern)
	}
	query = applyListOptions(query, filter, InvoiceSortFields, "invoice_date")

	if err := query.
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("row_no") }).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}
	invoices := make([]billing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// CountForCompany counts invoices of a company
func (r *GormInvoiceRepository) CountForCompany(ctx context.Context, tenantID, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("tenant_id = ? AND company_id = ?", tenantID, companyID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"number ILIKE ? OR reference_no ILIKE ? OR customer_id IN (SELECT id FROM customers WHERE name ILIKE ?)",
			pattern, pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists the header and its lines in one transaction
func (r *GormInvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "invoice")
}

// Update persists header changes and upserts the invoice's lines. Stored
// lines missing from inv.Lines are left untouched; removing a line is not
// an update-path operation.
func (r *GormInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
			return translateWriteError(err, "invoice")
		}
		for i := range model.Lines {
			if err := tx.Save(&model.Lines[i]).Error; err != nil {
				return translateWriteError(err, "invoice line")
			}
		}
		return nil
	})
}

// Delete removes the lines first, then the header, in one transaction.
// Invoices referenced by receipt allocations surface as REFERENCE_IN_USE.
func (r *GormInvoiceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InvoiceLineModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return translateWriteError(
			tx.Delete(&models.InvoiceModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "invoice")
	})
}

// RecomputeReceived sums allocated amounts across all allocation rows
// whose receipt header is not cancelled, writes the sum to the invoice's
// received_amount column and returns it. This is the single writer of
// that column.
func (r *GormInvoiceRepository) RecomputeReceived(ctx context.Context, tenantID, invoiceID uuid.UUID) (decimal.Decimal, error) {
	db := dbFromContext(ctx, r.db).WithContext(ctx)

	var sum decimal.Decimal
	if err := db.Model(&models.ReceiptAllocationModel{}).
		Select("COALESCE(SUM(receipt_allocations.allocated_amount), 0)").
		Joins("JOIN receipts ON receipts.id = receipt_allocations.receipt_id").
		Where("receipt_allocations.invoice_id = ? AND receipts.tenant_id = ? AND receipts.cancelled = ?",
			invoiceID, tenantID, false).
		Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}

	if err := db.Model(&models.InvoiceModel{}).
		Where("id = ? AND tenant_id = ?", invoiceID, tenantID).
		Update("received_amount", sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
