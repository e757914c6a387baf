package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finvoice/backend/internal/domain/calendar"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/infrastructure/persistence/models"
)

// GormFinancialYearRepository implements calendar.FinancialYearRepository
// using GORM
type GormFinancialYearRepository struct {
	db *gorm.DB
}

// NewGormFinancialYearRepository creates a new GormFinancialYearRepository
func NewGormFinancialYearRepository(db *gorm.DB) *GormFinancialYearRepository {
	return &GormFinancialYearRepository{db: db}
}

// FindByIDForTenant finds a financial year with its periods by ID
func (r *GormFinancialYearRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*calendar.FinancialYear, error) {
	var model models.FinancialYearModel
	if err := dbFromContext(ctx, r.db).WithContext(ctx).
		Preload("Periods", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds financial years for a tenant with filtering
func (r *GormFinancialYearRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]calendar.FinancialYear, error) {
	var yearModels []models.FinancialYearModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyListOptions(query, filter, FinancialYearSortFields, "start_date")

	if err := query.
		Preload("Periods", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Find(&yearModels).Error; err != nil {
		return nil, err
	}
	years := make([]calendar.FinancialYear, len(yearModels))
	for i, model := range yearModels {
		years[i] = *model.ToDomain()
	}
	return years, nil
}

// CountForTenant counts financial years for a tenant
func (r *GormFinancialYearRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Model(&models.FinancialYearModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindOverlapping returns any year whose inclusive date range intersects
// [start,end], excluding the given id.
func (r *GormFinancialYearRepository) FindOverlapping(ctx context.Context, tenantID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*calendar.FinancialYear, error) {
	var model models.FinancialYearModel
	query := dbFromContext(ctx, r.db).WithContext(ctx).
		Where("tenant_id = ? AND start_date <= ? AND end_date >= ?", tenantID, end, start)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Create persists the header and its periods in one transaction
func (r *GormFinancialYearRepository) Create(ctx context.Context, fy *calendar.FinancialYear) error {
	model := models.FinancialYearModelFromDomain(fy)
	return translateWriteError(
		dbFromContext(ctx, r.db).WithContext(ctx).Create(model).Error, "financial year")
}

// Update persists header changes; when regeneratePeriods is set, the
// stored period rows are deleted and rewritten from fy.Periods in the
// same transaction.
func (r *GormFinancialYearRepository) Update(ctx context.Context, fy *calendar.FinancialYear, regeneratePeriods bool) error {
	model := models.FinancialYearModelFromDomain(fy)
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Periods").Save(model).Error; err != nil {
			return translateWriteError(err, "financial year")
		}
		if !regeneratePeriods {
			return nil
		}
		if err := tx.Delete(&models.PeriodModel{}, "financial_year_id = ?", fy.ID).Error; err != nil {
			return err
		}
		if len(model.Periods) == 0 {
			return nil
		}
		return translateWriteError(tx.Create(&model.Periods).Error, "financial period")
	})
}

// Delete removes the year and its periods in one transaction. Years
// referenced elsewhere surface as REFERENCE_IN_USE.
func (r *GormFinancialYearRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return dbFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PeriodModel{}, "financial_year_id = ?", id).Error; err != nil {
			return err
		}
		return translateWriteError(
			tx.Delete(&models.FinancialYearModel{}, "id = ? AND tenant_id = ?", id, tenantID).Error, "financial year")
	})
}

var _ calendar.FinancialYearRepository = (*GormFinancialYearRepository)(nil)
