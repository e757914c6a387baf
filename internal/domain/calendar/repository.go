package calendar

import (
	"context"
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FinancialYearRepository persists financial years and their periods.
// Saving a year always rewrites its full period set.
type FinancialYearRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*FinancialYear, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]FinancialYear, error)
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	// FindOverlapping returns any year whose inclusive date range intersects
	// [start,end], excluding the given id (uuid.Nil to exclude nothing).
	FindOverlapping(ctx context.Context, tenantID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*FinancialYear, error)
	// Create persists the header and its periods in one transaction.
	Create(ctx context.Context, fy *FinancialYear) error
	// Update persists header changes; when regeneratePeriods is set the
	// stored period rows are deleted and rewritten from fy.Periods in the
	// same transaction.
	Update(ctx context.Context, fy *FinancialYear, regeneratePeriods bool) error
	// Delete removes the year and its periods. Foreign-key violations from
	// other tables surface as REFERENCE_IN_USE domain errors.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
