package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_month, period_year,
			   scheduled_days, attendance_days, excused_days, alpha_days,
			   base_salary, deduction_amount, total_deduction, total_salary,
			   status, paid_at, created_at, updated_at
		FROM payroll_records
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var rec payroll.PayrollRecord
	err := q.QueryRow(ctx, query, employeeID, month, year).Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.ScheduledDays, &rec.AttendanceDays, &rec.ExcusedDays, &rec.AlphaDays,
		&rec.BaseSalary, &rec.DeductionAmount, &rec.TotalDeduction, &rec.TotalSalary,
		&rec.Status, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int, branchID *string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "p.period_month = $1 AND p.period_year = $2"
	args := []interface{}{month, year}
	if branchID != nil && *branchID != "" {
		baseWhere += " AND e.branch_id = $3"
		args = append(args, *branchID)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.period_month, p.period_year,
			   p.scheduled_days, p.attendance_days, p.excused_days, p.alpha_days,
			   p.base_salary, p.deduction_amount, p.total_deduction, p.total_salary,
			   p.status, p.paid_at, p.created_at, p.updated_at,
			   e.full_name AS employee_name,
			   e.branch_id
		FROM payroll_records p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY e.full_name
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var rec payroll.PayrollRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
			&rec.ScheduledDays, &rec.AttendanceDays, &rec.ExcusedDays, &rec.AlphaDays,
			&rec.BaseSalary, &rec.DeductionAmount, &rec.TotalDeduction, &rec.TotalSalary,
			&rec.Status, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.BranchID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Upsert implements payroll.PayrollRepository.
func (r *payrollRepository) Upsert(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period_month, period_year,
			scheduled_days, attendance_days, excused_days, alpha_days,
			base_salary, deduction_amount, total_deduction, total_salary,
			status, paid_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			scheduled_days = EXCLUDED.scheduled_days,
			attendance_days = EXCLUDED.attendance_days,
			excused_days = EXCLUDED.excused_days,
			alpha_days = EXCLUDED.alpha_days,
			base_salary = EXCLUDED.base_salary,
			deduction_amount = EXCLUDED.deduction_amount,
			total_deduction = EXCLUDED.total_deduction,
			total_salary = EXCLUDED.total_salary,
			status = EXCLUDED.status,
			paid_at = EXCLUDED.paid_at,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, query,
		id,
		record.EmployeeID,
		record.PeriodMonth,
		record.PeriodYear,
		record.ScheduledDays,
		record.AttendanceDays,
		record.ExcusedDays,
		record.AlphaDays,
		record.BaseSalary,
		record.DeductionAmount,
		record.TotalDeduction,
		record.TotalSalary,
		string(record.Status),
		record.PaidAt,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return record, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepository) Delete(ctx context.Context, employeeID string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_records
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	commandTag, err := q.Exec(ctx, query, employeeID, month, year)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}
