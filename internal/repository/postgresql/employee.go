package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, role, branch_id, pin_hash, base_salary,
	deduction_amount, join_date, active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.Role, &e.BranchID, &e.PINHash, &e.BaseSalary,
		&e.DeductionAmount, &e.JoinDate, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// ListActiveByBranch implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveByBranch(ctx context.Context, branchID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE branch_id = $1 AND active
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by branch: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

// ListActiveByRole implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveByRole(ctx context.Context, role employee.Role, branchID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE role = $1 AND active
	`
	args := []interface{}{string(role)}

	if branchID != nil && *branchID != "" {
		query += ` AND branch_id = $2`
		args = append(args, *branchID)
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by role: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
