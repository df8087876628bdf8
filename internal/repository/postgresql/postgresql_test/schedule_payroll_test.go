package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
	"github.com/kasirku/pos-backend-go/internal/repository/postgresql"
)

func strPtr(s string) *string { return &s }

func TestScheduleRepository_UpsertReplacesDay(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	branchID := createTestBranch(t, ctx)
	employeeID := createTestEmployee(t, ctx, branchID)

	repo := postgresql.NewScheduleRepository(testDB)

	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	row := schedule.ShiftSchedule{
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		DayOfWeek:  0,
		ShiftType:  schedule.ShiftTypeMorning,
		StartTime:  strPtr("08:00"),
		EndTime:    strPtr("16:00"),
	}
	first, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	// Same (employee, week, day) again replaces rather than duplicating.
	row.ShiftType = schedule.ShiftTypeEvening
	row.StartTime = strPtr("14:00")
	row.EndTime = strPtr("22:00")
	_, err = repo.Upsert(ctx, row)
	require.NoError(t, err)

	rows, err := repo.Query(ctx, weekStart, schedule.QueryFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, schedule.ShiftTypeEvening, rows[0].ShiftType)
	require.NotNil(t, rows[0].StartTime)
	assert.Equal(t, "14:00", *rows[0].StartTime)

	found, err := repo.GetForEmployeeDay(ctx, employeeID, weekStart, 0)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, schedule.ShiftTypeEvening, found.ShiftType)

	// No row for a day never scheduled.
	missing, err := repo.GetForEmployeeDay(ctx, employeeID, weekStart, 3)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Week queries come back ordered by day of week across employees.
	other := createTestEmployee(t, ctx, branchID)
	_, err = repo.Upsert(ctx, schedule.ShiftSchedule{
		EmployeeID: other,
		WeekStart:  weekStart,
		DayOfWeek:  4,
		ShiftType:  schedule.ShiftTypeMorning,
		StartTime:  strPtr("08:00"),
		EndTime:    strPtr("16:00"),
	})
	require.NoError(t, err)

	all, err := repo.Query(ctx, weekStart, schedule.QueryFilter{BranchID: &branchID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 0, all[0].DayOfWeek)
	assert.Equal(t, 4, all[1].DayOfWeek)
}

func TestPayrollRepository_UpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	branchID := createTestBranch(t, ctx)
	employeeID := createTestEmployee(t, ctx, branchID)

	repo := postgresql.NewPayrollRepository(testDB)

	_, err := repo.GetByEmployeePeriod(ctx, employeeID, 2, 2026)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	paidAt := time.Now()
	record := payroll.PayrollRecord{
		EmployeeID:      employeeID,
		PeriodMonth:     2,
		PeriodYear:      2026,
		ScheduledDays:   12,
		AttendanceDays:  11,
		AlphaDays:       1,
		BaseSalary:      decimal.NewFromInt(3000000),
		DeductionAmount: decimal.NewFromInt(100000),
		TotalDeduction:  decimal.NewFromInt(100000),
		TotalSalary:     decimal.NewFromInt(2900000),
		Status:          payroll.PayrollStatusPaid,
		PaidAt:          &paidAt,
	}
	saved, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	// Upsert for the same period keeps a single row and the same ID.
	record.AttendanceDays = 12
	record.AlphaDays = 0
	record.TotalDeduction = decimal.Zero
	record.TotalSalary = decimal.NewFromInt(3000000)
	again, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, 12, again.AttendanceDays)

	listed, err := repo.ListByPeriod(ctx, 2, 2026, &branchID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].TotalSalary.Equal(decimal.NewFromInt(3000000)))

	require.NoError(t, repo.Delete(ctx, employeeID, 2, 2026))
	_, err = repo.GetByEmployeePeriod(ctx, employeeID, 2, 2026)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)

	// Deleting an absent record is reported.
	err = repo.Delete(ctx, employeeID, 2, 2026)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}
