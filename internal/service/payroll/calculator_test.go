package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
)

// February 2026 starts on a Sunday, so a Monday/Wednesday/Friday
// schedule yields exactly 12 working days (4 of each).
var (
	feb2026    = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	afterMonth = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	halfRate   = decimal.RequireFromString("0.5")
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:              "emp-1",
		FullName:        "Dewi Lestari",
		Role:            employee.RoleCashier,
		BranchID:        "branch-1",
		BaseSalary:      decimal.NewFromInt(3000000),
		DeductionAmount: decimal.NewFromInt(100000),
		JoinDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// mwfSchedules publishes Monday/Wednesday/Friday rows for every week
// overlapping February 2026.
func mwfSchedules(employeeID string) []schedule.ShiftSchedule {
	start := "08:00"
	end := "16:00"
	var rows []schedule.ShiftSchedule
	for _, monday := range []string{"2026-01-26", "2026-02-02", "2026-02-09", "2026-02-16", "2026-02-23"} {
		weekStart, _ := time.Parse("2006-01-02", monday)
		for _, day := range []int{0, 2, 4} {
			rows = append(rows, schedule.ShiftSchedule{
				EmployeeID: employeeID,
				WeekStart:  weekStart,
				DayOfWeek:  day,
				ShiftType:  schedule.ShiftTypeMorning,
				StartTime:  &start,
				EndTime:    &end,
			})
		}
	}
	return rows
}

// februaryWorkdays are the 12 scheduled dates under the MWF schedule.
var februaryWorkdays = []int{2, 4, 6, 9, 11, 13, 16, 18, 20, 23, 25, 27}

func recordOn(day int, status string) attendance.Record {
	return attendance.Record{
		EmployeeID: "emp-1",
		BranchID:   "branch-1",
		Date:       time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func fullMonthRecords(except map[int]string) []attendance.Record {
	var records []attendance.Record
	for _, day := range februaryWorkdays {
		status, overridden := except[day]
		if !overridden {
			status = attendance.StatusPresent
		}
		if status == "" {
			continue // day deliberately left unrecorded
		}
		records = append(records, recordOn(day, status))
	}
	return records
}

func computeFebruary(emp employee.Employee, schedules []schedule.ShiftSchedule, records []attendance.Record, today time.Time) MonthResult {
	return ComputeEmployeeMonth(MonthInput{
		Employee:      emp,
		Schedules:     schedules,
		Records:       records,
		Month:         2,
		Year:          2026,
		Today:         today,
		ExcusedFactor: halfRate,
	})
}

func TestComputeEmployeeMonth_FullAttendanceNoDeduction(t *testing.T) {
	emp := testEmployee()
	result := computeFebruary(emp, mwfSchedules(emp.ID), fullMonthRecords(nil), afterMonth)

	rec := result.Record
	assert.Equal(t, 12, rec.ScheduledDays)
	assert.Equal(t, 12, rec.AttendanceDays)
	assert.Equal(t, 0, rec.ExcusedDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.IsZero())
	assert.True(t, rec.TotalSalary.Equal(decimal.NewFromInt(3000000)))
	assert.Equal(t, payroll.PayrollStatusDraft, rec.Status)
	assert.False(t, result.FallbackUsed)
}

func TestComputeEmployeeMonth_UnrecordedDayIsAlpha(t *testing.T) {
	emp := testEmployee()
	records := fullMonthRecords(map[int]string{27: ""})
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	rec := result.Record
	assert.Equal(t, 12, rec.ScheduledDays)
	assert.Equal(t, 11, rec.AttendanceDays)
	assert.Equal(t, 1, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(100000)))
	assert.True(t, rec.TotalSalary.Equal(decimal.NewFromInt(2900000)))
}

func TestComputeEmployeeMonth_SickDayHalfRate(t *testing.T) {
	emp := testEmployee()
	records := fullMonthRecords(map[int]string{11: attendance.StatusSick})
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	rec := result.Record
	assert.Equal(t, 11, rec.AttendanceDays)
	assert.Equal(t, 1, rec.ExcusedDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(50000)))
	assert.True(t, rec.TotalSalary.Equal(decimal.NewFromInt(2950000)))
}

func TestComputeEmployeeMonth_EarlyDepartureCostsHalfRate(t *testing.T) {
	emp := testEmployee()
	records := fullMonthRecords(map[int]string{
		20: attendance.StatusPresent + attendance.EarlyDepartureQualifier,
	})
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	rec := result.Record
	// The day is still worked; only the half-rate excused charge
	// applies.
	assert.Equal(t, 12, rec.AttendanceDays)
	assert.Equal(t, 1, rec.ExcusedDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(50000)))
}

func TestComputeEmployeeMonth_RecordedAbsentIsFullAlpha(t *testing.T) {
	emp := testEmployee()
	records := fullMonthRecords(map[int]string{9: attendance.StatusAbsent})
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	rec := result.Record
	assert.Equal(t, 11, rec.AttendanceDays)
	assert.Equal(t, 1, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(100000)))
}

func TestComputeEmployeeMonth_JoinDateSkipsEarlierDays(t *testing.T) {
	emp := testEmployee()
	emp.JoinDate = time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

	// Only the six scheduled days from the 16th onward count.
	var records []attendance.Record
	for _, day := range []int{16, 18, 20, 23, 25, 27} {
		records = append(records, recordOn(day, attendance.StatusPresent))
	}
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	rec := result.Record
	assert.Equal(t, 6, rec.ScheduledDays)
	assert.Equal(t, 6, rec.AttendanceDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.IsZero())
}

func TestComputeEmployeeMonth_TodayCutsOffFutureDays(t *testing.T) {
	emp := testEmployee()
	today := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)

	var records []attendance.Record
	for _, day := range []int{2, 4, 6, 9, 11, 13} {
		records = append(records, recordOn(day, attendance.StatusPresent))
	}
	result := computeFebruary(emp, mwfSchedules(emp.ID), records, today)

	rec := result.Record
	assert.Equal(t, 6, rec.ScheduledDays)
	assert.Equal(t, 6, rec.AttendanceDays)
	assert.Equal(t, 0, rec.AlphaDays)
}

func TestComputeEmployeeMonth_UnpublishedWeeksStillScheduled(t *testing.T) {
	emp := testEmployee()

	// Mondays published for the first February week only; the other
	// weeks exist solely as unpublished gaps. Every February Monday
	// still counts as scheduled.
	start := "08:00"
	end := "16:00"
	weekStart, _ := time.Parse("2006-01-02", "2026-02-02")
	schedules := []schedule.ShiftSchedule{{
		EmployeeID: emp.ID,
		WeekStart:  weekStart,
		DayOfWeek:  0,
		ShiftType:  schedule.ShiftTypeMorning,
		StartTime:  &start,
		EndTime:    &end,
	}}
	records := []attendance.Record{recordOn(2, attendance.StatusPresent)}
	result := computeFebruary(emp, schedules, records, afterMonth)

	rec := result.Record
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 4, rec.ScheduledDays) // Feb 2, 9, 16, 23
	assert.Equal(t, 1, rec.AttendanceDays)
	assert.Equal(t, 3, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(300000)))
	assert.True(t, rec.TotalSalary.Equal(decimal.NewFromInt(2700000)))
}

func TestComputeEmployeeMonth_DayOffOnlyScheduleIsNotFallback(t *testing.T) {
	emp := testEmployee()

	weekStart, _ := time.Parse("2006-01-02", "2026-02-02")
	schedules := []schedule.ShiftSchedule{{
		EmployeeID: emp.ID,
		WeekStart:  weekStart,
		DayOfWeek:  0,
		ShiftType:  schedule.ShiftTypeDayOff,
	}}
	records := []attendance.Record{recordOn(2, attendance.StatusPresent)}
	result := computeFebruary(emp, schedules, records, afterMonth)

	rec := result.Record
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 0, rec.ScheduledDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.IsZero())
}

func TestComputeEmployeeMonth_NoScheduleFallback(t *testing.T) {
	emp := testEmployee()
	records := []attendance.Record{
		recordOn(2, attendance.StatusPresent),
		recordOn(4, attendance.StatusSick),
		recordOn(6, attendance.StatusPresent),
	}
	result := computeFebruary(emp, nil, records, afterMonth)

	rec := result.Record
	assert.True(t, result.FallbackUsed)
	assert.Equal(t, 3, rec.ScheduledDays)
	assert.Equal(t, 2, rec.AttendanceDays)
	assert.Equal(t, 1, rec.ExcusedDays)
	assert.Equal(t, 0, rec.AlphaDays)
}

func TestComputeEmployeeMonth_NoScheduleNoRecords(t *testing.T) {
	emp := testEmployee()
	result := computeFebruary(emp, nil, nil, afterMonth)

	rec := result.Record
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, 0, rec.ScheduledDays)
	assert.Equal(t, 0, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.IsZero())
	assert.True(t, rec.TotalSalary.Equal(emp.BaseSalary))
}

func TestComputeEmployeeMonth_SalaryFlooredAtZero(t *testing.T) {
	emp := testEmployee()
	emp.BaseSalary = decimal.NewFromInt(100000)
	emp.DeductionAmount = decimal.NewFromInt(50000)

	// Scheduled all month, nothing recorded: 12 full alpha days.
	result := computeFebruary(emp, mwfSchedules(emp.ID), nil, afterMonth)

	rec := result.Record
	assert.Equal(t, 12, rec.AlphaDays)
	assert.True(t, rec.TotalDeduction.Equal(decimal.NewFromInt(600000)))
	assert.True(t, rec.TotalSalary.IsZero())
}

func TestComputeEmployeeMonth_Deterministic(t *testing.T) {
	emp := testEmployee()
	records := fullMonthRecords(map[int]string{11: attendance.StatusSick, 27: ""})

	first := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)
	second := computeFebruary(emp, mwfSchedules(emp.ID), records, afterMonth)

	assert.Equal(t, first.Record.ScheduledDays, second.Record.ScheduledDays)
	assert.Equal(t, first.Record.AlphaDays, second.Record.AlphaDays)
	assert.True(t, first.Record.TotalDeduction.Equal(second.Record.TotalDeduction))
	assert.True(t, first.Record.TotalSalary.Equal(second.Record.TotalSalary))
}
