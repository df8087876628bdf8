package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	// Upsert replaces any existing row for (employee, week start,
	// day of week). Idempotent.
	Upsert(ctx context.Context, row ShiftSchedule) (ShiftSchedule, error)

	// Query returns rows for a week, optionally filtered by branch
	// and/or employee, ordered by day_of_week.
	Query(ctx context.Context, weekStart time.Time, filter QueryFilter) ([]ShiftSchedule, error)

	// GetForEmployeeDay retrieves the single row for an employee on
	// one day of one week. Returns nil when no row exists.
	GetForEmployeeDay(ctx context.Context, employeeID string, weekStart time.Time, dayOfWeek int) (*ShiftSchedule, error)

	// ListForEmployeeBetween returns all rows for the employee whose
	// week overlaps [from, to]. Used by the payroll aggregator.
	ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]ShiftSchedule, error)
}

type QueryFilter struct {
	BranchID   *string
	EmployeeID *string
}
