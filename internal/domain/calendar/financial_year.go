package calendar

import (
	"fmt"
	"time"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PeriodStatus represents the posting status of an accounting period
type PeriodStatus string

const (
	PeriodStatusOpen   PeriodStatus = "Open"
	PeriodStatusClosed PeriodStatus = "Closed"
)

// IsValid checks if the status is a valid PeriodStatus
func (s PeriodStatus) IsValid() bool {
	return s == PeriodStatusOpen || s == PeriodStatusClosed
}

// Period is one calendar-month bucket inside a financial year. Periods are
// always regenerated as a set from the year's dates, never edited one by one.
type Period struct {
	ID              uuid.UUID    `json:"id"`
	FinancialYearID uuid.UUID    `json:"financial_year_id"`
	Name            string       `json:"name"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	Sequence        int          `json:"sequence"`
	Status          PeriodStatus `json:"status"`
}

// FinancialYear is the aggregate root for an accounting year and its
// month-wise periods.
type FinancialYear struct {
	shared.TenantAggregateRoot
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Active    bool      `json:"active"`
	Periods   []Period  `json:"periods"`
}

// NewFinancialYear creates a financial year with its periods generated.
// When endDate is zero it defaults to one year after startDate minus a day.
func NewFinancialYear(tenantID uuid.UUID, actor, name string, startDate, endDate time.Time) (*FinancialYear, error) {
	if name == "" {
		return nil, shared.NewValidationError("financial year name is required")
	}
	if startDate.IsZero() {
		return nil, shared.NewValidationError("financial year start date is required")
	}
	if endDate.IsZero() {
		endDate = startDate.AddDate(1, 0, -1)
	}
	if !endDate.After(startDate) {
		return nil, shared.NewValidationError("financial year end date must be after start date")
	}

	fy := &FinancialYear{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID, actor),
		Name:                name,
		StartDate:           startDate,
		EndDate:             endDate,
		Active:              true,
	}
	fy.regeneratePeriods()
	return fy, nil
}

// Overlaps reports whether [start,end] intersects this year's range,
// bounds inclusive.
func (fy *FinancialYear) Overlaps(start, end time.Time) bool {
	return !fy.StartDate.After(end) && !fy.EndDate.Before(start)
}

// UpdateFields applies the provided optional fields. A nil pointer leaves
// the stored value untouched. Periods are regenerated whenever either date
// changes.
type UpdateFields struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	Active    *bool
}

// Apply merges the update into the aggregate and reports whether the
// period set was regenerated.
func (fy *FinancialYear) Apply(upd UpdateFields, actor string) (bool, error) {
	datesChanged := false
	if upd.Name != nil {
		if *upd.Name == "" {
			return false, shared.NewValidationError("financial year name cannot be empty")
		}
		fy.Name = *upd.Name
	}
	if upd.StartDate != nil && !upd.StartDate.Equal(fy.StartDate) {
		fy.StartDate = *upd.StartDate
		datesChanged = true
	}
	if upd.EndDate != nil && !upd.EndDate.Equal(fy.EndDate) {
		fy.EndDate = *upd.EndDate
		datesChanged = true
	}
	if upd.Active != nil {
		fy.Active = *upd.Active
	}
	if !fy.EndDate.After(fy.StartDate) {
		return false, shared.NewValidationError("financial year end date must be after start date")
	}
	if datesChanged {
		fy.regeneratePeriods()
	}
	fy.Touch(actor)
	return datesChanged, nil
}

func (fy *FinancialYear) regeneratePeriods() {
	fy.Periods = GeneratePeriods(fy.StartDate, fy.EndDate)
	for i := range fy.Periods {
		fy.Periods[i].FinancialYearID = fy.ID
	}
}

// GeneratePeriods tiles [start,end] into calendar-month periods. Each
// period runs from its start to the last day of that month, or to end if
// that comes first. Sequence numbers count from 1 and names read like
// "April 2025". The loop stops once the next start passes end.
func GeneratePeriods(start, end time.Time) []Period {
	periods := make([]Period, 0, 12)
	current := start
	seq := 1

	for !current.After(end) {
		monthEnd := endOfMonth(current)
		if monthEnd.After(end) {
			monthEnd = end
		}
		periods = append(periods, Period{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("%s %d", current.Month(), current.Year()),
			StartDate: current,
			EndDate:   monthEnd,
			Sequence:  seq,
			Status:    PeriodStatusOpen,
		})
		current = monthEnd.AddDate(0, 0, 1)
		seq++
	}
	return periods
}

func endOfMonth(d time.Time) time.Time {
	firstOfNext := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
