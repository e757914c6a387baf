package calendar

import (
	"context"
	"time"

	"github.com/finvoice/backend/internal/domain/calendar"
	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// FinancialYearService provides application-level financial year operations.
type FinancialYearService struct {
	repo calendar.FinancialYearRepository
}

// NewFinancialYearService creates a new FinancialYearService.
func NewFinancialYearService(repo calendar.FinancialYearRepository) *FinancialYearService {
	return &FinancialYearService{repo: repo}
}

// CreateFinancialYearInput carries the fields for creating a financial year.
// EndDate may be zero; it then defaults to one year after StartDate minus a day.
type CreateFinancialYearInput struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date"`
}

// UpdateFinancialYearInput carries optional fields; nil leaves a field as is.
type UpdateFinancialYearInput struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Active    *bool      `json:"active"`
}

// CreateFinancialYear creates a financial year with generated periods.
// Date ranges may not overlap an existing year of the same tenant.
func (s *FinancialYearService) CreateFinancialYear(ctx context.Context, tenantID uuid.UUID, actor string, input CreateFinancialYearInput) (*calendar.FinancialYear, error) {
	fy, err := calendar.NewFinancialYear(tenantID, actor, input.Name, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindOverlapping(ctx, tenantID, fy.StartDate, fy.EndDate, uuid.Nil)
	if err != nil {
		return nil, shared.NewInternalError("check financial year overlap", err)
	}
	if existing != nil {
		return nil, shared.NewConflictError("date range overlaps financial year %s", existing.Name)
	}

	if err := s.repo.Create(ctx, fy); err != nil {
		return nil, shared.NewInternalError("create financial year", err)
	}
	return fy, nil
}

// GetFinancialYear returns one financial year with its periods.
func (s *FinancialYearService) GetFinancialYear(ctx context.Context, tenantID, id uuid.UUID) (*calendar.FinancialYear, error) {
	fy, err := s.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, shared.NewInternalError("find financial year", err)
	}
	if fy == nil {
		return nil, shared.NewNotFoundError("financial year")
	}
	return fy, nil
}

// ListFinancialYears returns a page of financial years.
func (s *FinancialYearService) ListFinancialYears(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[calendar.FinancialYear], error) {
	years, err := s.repo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("list financial years", err)
	}
	total, err := s.repo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, shared.NewInternalError("count financial years", err)
	}
	return shared.NewPaginated(years, total, filter), nil
}

// UpdateFinancialYear merges the input into the year. When either date
// changes the periods are regenerated and rewritten, and the new range is
// re-checked for overlap against other years.
func (s *FinancialYearService) UpdateFinancialYear(ctx context.Context, tenantID, id uuid.UUID, actor string, input UpdateFinancialYearInput) (*calendar.FinancialYear, error) {
	fy, err := s.GetFinancialYear(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	regenerated, err := fy.Apply(calendar.UpdateFields{
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Active:    input.Active,
	}, actor)
	if err != nil {
		return nil, err
	}

	if regenerated {
		existing, err := s.repo.FindOverlapping(ctx, tenantID, fy.StartDate, fy.EndDate, fy.ID)
		if err != nil {
			return nil, shared.NewInternalError("check financial year overlap", err)
		}
		if existing != nil {
			return nil, shared.NewConflictError("date range overlaps financial year %s", existing.Name)
		}
	}

	if err := s.repo.Update(ctx, fy, regenerated); err != nil {
		return nil, shared.NewInternalError("update financial year", err)
	}
	return fy, nil
}

// DeleteFinancialYear removes the year and its periods.
func (s *FinancialYearService) DeleteFinancialYear(ctx context.Context, tenantID, id uuid.UUID) error {
	fy, err := s.GetFinancialYear(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, tenantID, fy.ID); err != nil {
		return err
	}
	return nil
}
