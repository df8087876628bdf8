package payroll

import "context"

type PayrollRepository interface {
	// GetByEmployeePeriod retrieves the finalized record for an
	// employee and month, or ErrPayrollRecordNotFound.
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)

	// ListByPeriod returns all finalized records for a month,
	// optionally limited to a branch.
	ListByPeriod(ctx context.Context, month, year int, branchID *string) ([]PayrollRecord, error)

	// Upsert inserts or replaces the record for
	// (employee, month, year).
	Upsert(ctx context.Context, record PayrollRecord) (PayrollRecord, error)

	// Delete removes the finalized record, reverting the employee to
	// live draft computation for the month.
	Delete(ctx context.Context, employeeID string, month, year int) error
}
