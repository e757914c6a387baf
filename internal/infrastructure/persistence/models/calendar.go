package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/finvoice/backend/internal/domain/calendar"
)

// FinancialYearModel is the persistence model for the FinancialYear
// aggregate root.
type FinancialYearModel struct {
	TenantAggregateModel
	Name      string        `gorm:"type:varchar(50);not null;uniqueIndex:idx_fy_tenant_name,priority:2"`
	StartDate time.Time     `gorm:"not null"`
	EndDate   time.Time     `gorm:"not null"`
	Active    bool          `gorm:"not null;default:true"`
	Periods   []PeriodModel `gorm:"foreignKey:FinancialYearID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (FinancialYearModel) TableName() string { return "financial_years" }

// PeriodModel is one calendar-month bucket of a financial year.
type PeriodModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	FinancialYearID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name            string    `gorm:"type:varchar(50);not null"`
	StartDate       time.Time `gorm:"not null"`
	EndDate         time.Time `gorm:"not null"`
	Sequence        int       `gorm:"not null"`
	Status          string    `gorm:"type:varchar(10);not null;default:'Open'"`
}

// TableName returns the table name for GORM
func (PeriodModel) TableName() string { return "financial_periods" }

// ToDomain converts the persistence model to a domain FinancialYear with
// its periods in sequence order.
func (m *FinancialYearModel) ToDomain() *calendar.FinancialYear {
	fy := &calendar.FinancialYear{
		TenantAggregateRoot: m.ToDomainTenantAggregateRoot(),
		Name:                m.Name,
		StartDate:           m.StartDate,
		EndDate:             m.EndDate,
		Active:              m.Active,
	}
	fy.Periods = make([]calendar.Period, len(m.Periods))
	for i, p := range m.Periods {
		fy.Periods[i] = calendar.Period{
			ID:              p.ID,
			FinancialYearID: p.FinancialYearID,
			Name:            p.Name,
			StartDate:       p.StartDate,
			EndDate:         p.EndDate,
			Sequence:        p.Sequence,
			Status:          calendar.PeriodStatus(p.Status),
		}
	}
	return fy
}

// FinancialYearModelFromDomain converts a domain FinancialYear to its
// persistence model.
func FinancialYearModelFromDomain(fy *calendar.FinancialYear) *FinancialYearModel {
	m := &FinancialYearModel{
		Name:      fy.Name,
		StartDate: fy.StartDate,
		EndDate:   fy.EndDate,
		Active:    fy.Active,
	}
	m.FromDomainTenantAggregateRoot(fy.TenantAggregateRoot)
	m.Periods = make([]PeriodModel, len(fy.Periods))
	for i, p := range fy.Periods {
		m.Periods[i] = PeriodModel{
			ID:              p.ID,
			FinancialYearID: p.FinancialYearID,
			Name:            p.Name,
			StartDate:       p.StartDate,
			EndDate:         p.EndDate,
			Sequence:        p.Sequence,
			Status:          string(p.Status),
		}
	}
	return m
}
