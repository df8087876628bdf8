package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/kasirku/pos-backend-go/internal/config"
	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.ScheduleRepository
	employeeRepo   employee.EmployeeRepository
	policy         config.PayrollConfig
	loc            *time.Location
	logger         *slog.Logger
	now            func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	policy config.PayrollConfig,
	loc *time.Location,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepo,
		attendanceRepo:    attendanceRepo,
		scheduleRepo:      scheduleRepo,
		employeeRepo:      employeeRepo,
		policy:            policy,
		loc:               loc,
		logger:            logger,
		now:               time.Now,
	}
}

func parsePeriod(period string) (month, year int, err error) {
	parsed, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month: %w", err)
	}
	return int(parsed.Month()), parsed.Year(), nil
}

// computeLive gathers one employee's month inputs and runs the pure
// computation.
func (p *PayrollServiceImpl) computeLive(ctx context.Context, emp employee.Employee, month, year int) (MonthResult, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, p.loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	schedules, err := p.scheduleRepo.ListForEmployeeBetween(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return MonthResult{}, fmt.Errorf("failed to list schedules: %w", err)
	}

	records, err := p.attendanceRepo.ListForEmployeeBetween(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return MonthResult{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	today := p.now().In(p.loc)
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, p.loc)

	result := ComputeEmployeeMonth(MonthInput{
		Employee:      emp,
		Schedules:     schedules,
		Records:       records,
		Month:         month,
		Year:          year,
		Today:         today,
		ExcusedFactor: p.policy.ExcusedDeductionFactor,
	})
	if result.FallbackUsed {
		p.logger.Warn("employee has no schedule rows; using record count as scheduled days",
			slog.String("employee_id", emp.ID),
			slog.Int("month", month),
			slog.Int("year", year),
		)
	}
	return result, nil
}

// ComputeMonth implements payroll.PayrollService.
func (p *PayrollServiceImpl) ComputeMonth(ctx context.Context, req payroll.ComputeMonthRequest) (payroll.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthResponse{}, err
	}
	month, year, err := parsePeriod(req.Month)
	if err != nil {
		return payroll.MonthResponse{}, err
	}

	employees, err := p.employeeRepo.ListActiveByRole(ctx, employee.RoleCashier, req.BranchID)
	if err != nil {
		return payroll.MonthResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	finalized, err := p.PayrollRepository.ListByPeriod(ctx, month, year, req.BranchID)
	if err != nil {
		return payroll.MonthResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}
	finalizedByEmployee := make(map[string]payroll.PayrollRecord, len(finalized))
	for _, rec := range finalized {
		finalizedByEmployee[rec.EmployeeID] = rec
	}

	rows := make([]payroll.PayrollRow, 0, len(employees))
	for _, emp := range employees {
		if rec, ok := finalizedByEmployee[emp.ID]; ok {
			name := emp.FullName
			rec.EmployeeName = &name
			rows = append(rows, mapRecordToRow(rec, req.Month))
			continue
		}
		result, err := p.computeLive(ctx, emp, month, year)
		if err != nil {
			return payroll.MonthResponse{}, err
		}
		rows = append(rows, mapRecordToRow(result.Record, req.Month))
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})

	return payroll.MonthResponse{
		Month: req.Month,
		Rows:  rows,
	}, nil
}

// Finalize implements payroll.PayrollService. Re-finalizing an already
// stored record only moves its status (draft to paid); the day-count
// snapshot frozen at first finalization stands until Reset.
func (p *PayrollServiceImpl) Finalize(ctx context.Context, req payroll.FinalizeRequest) (payroll.PayrollRow, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRow{}, err
	}
	month, year, err := parsePeriod(req.Month)
	if err != nil {
		return payroll.PayrollRow{}, err
	}

	var record payroll.PayrollRecord
	existing, err := p.PayrollRepository.GetByEmployeePeriod(ctx, req.EmployeeID, month, year)
	switch {
	case err == nil:
		record = existing
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		emp, err := p.employeeRepo.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return payroll.PayrollRow{}, err
		}
		result, err := p.computeLive(ctx, emp, month, year)
		if err != nil {
			return payroll.PayrollRow{}, err
		}
		record = result.Record
	default:
		return payroll.PayrollRow{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	record.Status = payroll.PayrollStatus(req.Status)
	if record.Status == payroll.PayrollStatusPaid {
		paidAt := p.now()
		record.PaidAt = &paidAt
	} else {
		record.PaidAt = nil
	}

	saved, err := p.PayrollRepository.Upsert(ctx, record)
	if err != nil {
		return payroll.PayrollRow{}, fmt.Errorf("failed to store payroll record: %w", err)
	}
	if saved.EmployeeName == nil {
		saved.EmployeeName = record.EmployeeName
	}

	return mapRecordToRow(saved, req.Month), nil
}

// Reset implements payroll.PayrollService.
func (p *PayrollServiceImpl) Reset(ctx context.Context, req payroll.ResetRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	month, year, err := parsePeriod(req.Month)
	if err != nil {
		return err
	}
	return p.PayrollRepository.Delete(ctx, req.EmployeeID, month, year)
}

// mapRecordToRow converts a PayrollRecord to its response row.
func mapRecordToRow(rec payroll.PayrollRecord, period string) payroll.PayrollRow {
	var name string
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}
	var paidAt *string
	if rec.PaidAt != nil {
		formatted := rec.PaidAt.Format(time.RFC3339)
		paidAt = &formatted
	}
	return payroll.PayrollRow{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		EmployeeName:    name,
		Month:           period,
		ScheduledDays:   rec.ScheduledDays,
		AttendanceDays:  rec.AttendanceDays,
		ExcusedDays:     rec.ExcusedDays,
		AlphaDays:       rec.AlphaDays,
		BaseSalary:      rec.BaseSalary.String(),
		DeductionAmount: rec.DeductionAmount.String(),
		TotalDeduction:  rec.TotalDeduction.String(),
		TotalSalary:     rec.TotalSalary.String(),
		Status:          string(rec.Status),
		PaidAt:          paidAt,
	}
}
