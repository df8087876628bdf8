package employee

import "context"

// EmployeeRepository is the read-only contract against the employee
// directory. Writes go through the employee-management module, never
// through this core.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActiveByBranch retrieves active employees assigned to a
	// branch. Used by PIN verification.
	ListActiveByBranch(ctx context.Context, branchID string) ([]Employee, error)

	// ListActiveByRole retrieves active employees holding a role,
	// optionally limited to one branch. Used by the payroll
	// aggregator to scope a month run to shift staff.
	ListActiveByRole(ctx context.Context, role Role, branchID *string) ([]Employee, error)
}
