package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// one-row-per-(employee, date) invariant is enforced by a unique index
// in storage; Create surfaces a violation as ErrRecordExists so the
// caller can treat it as an expected condition.
type AttendanceRepository interface {
	// Create inserts a new attendance record. Returns
	// ErrRecordExists when a row for (employee, date) already exists.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// date. Returns nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update mutates an existing record (clock-out, status change).
	Update(ctx context.Context, record Record) error

	// ListForEmployeeBetween returns records with date in
	// [from, to], ordered by date.
	ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// List retrieves records with filters and pagination for display.
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListMissingCheckOutBefore returns records from days strictly
	// before cutoff that were never clocked out. Used by the
	// watchdog advisory job.
	ListMissingCheckOutBefore(ctx context.Context, cutoff time.Time) ([]Record, error)
}
