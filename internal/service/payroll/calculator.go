package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
)

// MonthInput is everything the month computation needs, gathered up
// front so the computation itself is a pure function.
type MonthInput struct {
	Employee  employee.Employee
	Schedules []schedule.ShiftSchedule
	Records   []attendance.Record
	Month     int
	Year      int
	// Today caps the scheduled-day walk so a mid-month computation
	// does not count days that have not happened yet.
	Today         time.Time
	ExcusedFactor decimal.Decimal
}

// MonthResult is the computed draft figure plus the advisory fallback
// flag.
type MonthResult struct {
	Record payroll.PayrollRecord
	// FallbackUsed is set when the employee has no schedule rows at
	// all, in which case the attendance record count stands in for
	// the scheduled day count. Inherited behavior: it makes a
	// fully-recorded month look complete even if the employee was
	// expected on more days than were recorded.
	FallbackUsed bool
}

// ComputeEmployeeMonth derives one employee's payroll figure for a
// month from the published schedule and the attendance records.
//
// Day classification:
//   - present/late (with or without early departure) count as worked;
//   - sick/leave count as excused, deducted at the excused factor;
//   - an early departure additionally counts one excused day on top of
//     the worked day, so leaving early costs the factor, not a full
//     absence;
//   - recorded absent and scheduled-but-unrecorded days are both alpha,
//     deducted at the full per-day amount.
func ComputeEmployeeMonth(in MonthInput) MonthResult {
	loc := in.Today.Location()
	monthStart := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	// The scheduled set is weekday-based: a working row on any week
	// overlapping the month marks that day of the week as scheduled
	// for the whole month, so an unpublished week does not quietly
	// zero out the employee's expected days.
	workdays := make(map[int]bool, 7)
	for _, row := range in.Schedules {
		if row.IsWorkday() {
			workdays[row.DayOfWeek] = true
		}
	}

	scheduledDays := 0
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if d.After(in.Today) {
			break
		}
		if d.Before(in.Employee.JoinDate) {
			continue
		}
		if workdays[schedule.DayOfWeekOf(d)] {
			scheduledDays++
		}
	}

	attendanceDays := 0
	excusedAbsences := 0
	earlyDepartures := 0
	recordedAbsent := 0
	recordsInMonth := 0
	for _, rec := range in.Records {
		if rec.Date.Before(monthStart) || rec.Date.After(monthEnd) || rec.Date.After(in.Today) {
			continue
		}
		recordsInMonth++
		switch attendance.BaseStatus(rec.Status) {
		case attendance.StatusPresent, attendance.StatusLate:
			attendanceDays++
			if attendance.HasEarlyDeparture(rec.Status) {
				earlyDepartures++
			}
		case attendance.StatusSick, attendance.StatusLeave:
			excusedAbsences++
		case attendance.StatusAbsent:
			recordedAbsent++
		}
	}

	// The degraded record-count mode applies only to employees with no
	// schedule rows whatsoever; a published day-off-only week is a real
	// schedule of zero working days.
	fallbackUsed := false
	if len(in.Schedules) == 0 && recordsInMonth > 0 {
		scheduledDays = recordsInMonth
		fallbackUsed = true
	}

	// Scheduled days not covered by any record are unrecorded alpha.
	systemAlpha := scheduledDays - (attendanceDays + excusedAbsences + recordedAbsent)
	if systemAlpha < 0 {
		systemAlpha = 0
	}
	totalAlpha := systemAlpha + recordedAbsent
	excusedDays := excusedAbsences + earlyDepartures

	deduction := in.Employee.DeductionAmount
	totalDeduction := deduction.Mul(decimal.NewFromInt(int64(totalAlpha))).
		Add(deduction.Mul(in.ExcusedFactor).Mul(decimal.NewFromInt(int64(excusedDays))))

	totalSalary := in.Employee.BaseSalary.Sub(totalDeduction)
	if totalSalary.IsNegative() {
		totalSalary = decimal.Zero
	}

	name := in.Employee.FullName
	return MonthResult{
		Record: payroll.PayrollRecord{
			EmployeeID:      in.Employee.ID,
			PeriodMonth:     in.Month,
			PeriodYear:      in.Year,
			ScheduledDays:   scheduledDays,
			AttendanceDays:  attendanceDays,
			ExcusedDays:     excusedDays,
			AlphaDays:       totalAlpha,
			BaseSalary:      in.Employee.BaseSalary,
			DeductionAmount: deduction,
			TotalDeduction:  totalDeduction,
			TotalSalary:     totalSalary,
			Status:          payroll.PayrollStatusDraft,
			EmployeeName:    &name,
		},
		FallbackUsed: fallbackUsed,
	}
}
