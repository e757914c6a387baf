package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGeneratePeriods_FullFiscalYear(t *testing.T) {
	periods := GeneratePeriods(date(2024, time.April, 1), date(2025, time.March, 31))

	require.Len(t, periods, 12)
	assert.Equal(t, "April 2024", periods[0].Name)
	assert.Equal(t, date(2024, time.April, 1), periods[0].StartDate)
	assert.Equal(t, date(2024, time.April, 30), periods[0].EndDate)
	assert.Equal(t, "March 2025", periods[11].Name)
	assert.Equal(t, date(2025, time.March, 31), periods[11].EndDate)

	for i, p := range periods {
		assert.Equal(t, i+1, p.Sequence)
		assert.Equal(t, PeriodStatusOpen, p.Status)
	}
}

func TestGeneratePeriods_NoGapsNoOverlaps(t *testing.T) {
	start := date(2024, time.April, 15)
	end := date(2025, time.June, 10)
	periods := GeneratePeriods(start, end)

	require.NotEmpty(t, periods)
	assert.Equal(t, start, periods[0].StartDate)
	assert.Equal(t, end, periods[len(periods)-1].EndDate)

	for i := 1; i < len(periods); i++ {
		// Each period starts the day after the previous one ends.
		assert.Equal(t, periods[i-1].EndDate.AddDate(0, 0, 1), periods[i].StartDate)
	}
	for i, p := range periods[:len(periods)-1] {
		// Every non-final period is bounded within one calendar month.
		assert.Equal(t, p.StartDate.Month(), p.EndDate.Month(), "period %d spans months", i+1)
		assert.Equal(t, p.StartDate.Year(), p.EndDate.Year())
	}
}

func TestGeneratePeriods_MidMonthStart(t *testing.T) {
	periods := GeneratePeriods(date(2024, time.April, 15), date(2024, time.June, 30))

	require.Len(t, periods, 3)
	assert.Equal(t, date(2024, time.April, 30), periods[0].EndDate)
	assert.Equal(t, date(2024, time.May, 1), periods[1].StartDate)
	assert.Equal(t, date(2024, time.May, 31), periods[1].EndDate)
}

func TestGeneratePeriods_LastPeriodTruncated(t *testing.T) {
	periods := GeneratePeriods(date(2024, time.April, 1), date(2024, time.May, 20))

	require.Len(t, periods, 2)
	assert.Equal(t, date(2024, time.May, 20), periods[1].EndDate)
}

func TestGeneratePeriods_SingleDay(t *testing.T) {
	d := date(2024, time.July, 31)
	periods := GeneratePeriods(d, d)

	require.Len(t, periods, 1)
	assert.Equal(t, d, periods[0].StartDate)
	assert.Equal(t, d, periods[0].EndDate)
	assert.Equal(t, "July 2024", periods[0].Name)
}

func TestGeneratePeriods_FebruaryLeapYear(t *testing.T) {
	periods := GeneratePeriods(date(2024, time.February, 1), date(2024, time.March, 31))

	require.Len(t, periods, 2)
	assert.Equal(t, date(2024, time.February, 29), periods[0].EndDate)
}

func TestNewFinancialYear(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), date(2025, time.March, 31))
	require.NoError(t, err)

	assert.Equal(t, "FY 2024-25", fy.Name)
	assert.True(t, fy.Active)
	assert.Len(t, fy.Periods, 12)
	for _, p := range fy.Periods {
		assert.Equal(t, fy.ID, p.FinancialYearID)
	}
	assert.Equal(t, "admin", fy.CreatedBy)
}

func TestNewFinancialYear_DefaultEndDate(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 31), fy.EndDate)
}

func TestNewFinancialYear_Validation(t *testing.T) {
	_, err := NewFinancialYear(uuid.New(), "admin", "", date(2024, time.April, 1), date(2025, time.March, 31))
	assert.Error(t, err)

	_, err = NewFinancialYear(uuid.New(), "admin", "FY", time.Time{}, date(2025, time.March, 31))
	assert.Error(t, err)

	_, err = NewFinancialYear(uuid.New(), "admin", "FY", date(2025, time.March, 31), date(2024, time.April, 1))
	assert.Error(t, err)
}

func TestFinancialYear_Overlaps(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), date(2025, time.March, 31))
	require.NoError(t, err)

	assert.True(t, fy.Overlaps(date(2024, time.October, 1), date(2025, time.January, 1)))
	assert.True(t, fy.Overlaps(date(2025, time.March, 31), date(2026, time.March, 31)), "inclusive end bound")
	assert.True(t, fy.Overlaps(date(2023, time.April, 1), date(2024, time.April, 1)), "inclusive start bound")
	assert.False(t, fy.Overlaps(date(2025, time.April, 1), date(2026, time.March, 31)))
	assert.False(t, fy.Overlaps(date(2023, time.April, 1), date(2024, time.March, 31)))
}

func TestFinancialYear_Apply_DateChangeRegenerates(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), date(2025, time.March, 31))
	require.NoError(t, err)
	originalFirst := fy.Periods[0].ID

	newEnd := date(2024, time.September, 30)
	regenerated, err := fy.Apply(UpdateFields{EndDate: &newEnd}, "editor")
	require.NoError(t, err)

	assert.True(t, regenerated)
	assert.Len(t, fy.Periods, 6)
	assert.NotEqual(t, originalFirst, fy.Periods[0].ID, "periods are rebuilt, not merged")
	assert.Equal(t, "editor", fy.UpdatedBy)
}

func TestFinancialYear_Apply_NameOnlyKeepsPeriods(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), date(2025, time.March, 31))
	require.NoError(t, err)
	before := make([]uuid.UUID, len(fy.Periods))
	for i, p := range fy.Periods {
		before[i] = p.ID
	}

	name := "FY 2024-2025"
	regenerated, err := fy.Apply(UpdateFields{Name: &name}, "editor")
	require.NoError(t, err)

	assert.False(t, regenerated)
	require.Len(t, fy.Periods, len(before))
	for i, p := range fy.Periods {
		assert.Equal(t, before[i], p.ID)
	}
}

func TestFinancialYear_Apply_InvalidRange(t *testing.T) {
	fy, err := NewFinancialYear(uuid.New(), "admin", "FY 2024-25", date(2024, time.April, 1), date(2025, time.March, 31))
	require.NoError(t, err)

	bad := date(2023, time.January, 1)
	_, err = fy.Apply(UpdateFields{EndDate: &bad}, "editor")
	assert.Error(t, err)
}
