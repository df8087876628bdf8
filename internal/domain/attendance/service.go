package attendance

import (
	"context"
	"time"
)

// ScheduleToday describes whether (and when) an employee is expected
// to work on a given date.
type ScheduleToday struct {
	Scheduled bool
	ShiftType string
	StartTime *string
	EndTime   *string
}

type AttendanceService interface {
	// HasScheduleToday consults the schedule store for the ISO week
	// containing date. A missing row or a day-off row both report
	// scheduled=false.
	HasScheduleToday(ctx context.Context, employeeID string, date time.Time) (ScheduleToday, error)

	// ClockIn records presence for the day, computing lateness
	// against the scheduled start plus the grace period. Returns
	// ErrNoScheduleToday when the employee is not scheduled; reports
	// an existing record via ClockInResult.AlreadyIn rather than
	// failing, so the shift-open flow can proceed.
	ClockIn(ctx context.Context, employeeID, branchID string, now time.Time) (ClockInResult, error)

	// ClockOut stamps the checkout and appends the early-departure
	// qualifier when applicable. Advisory: never blocks.
	ClockOut(ctx context.Context, employeeID string, now time.Time) (ClockOutResult, error)

	// ManualRecord inserts an excused or unexcused absence without a
	// presence event. Same one-record-per-day invariant.
	ManualRecord(ctx context.Context, req ManualRecordRequest) (RecordResponse, error)

	// TodayStatus is the display query behind the cashier screen.
	TodayStatus(ctx context.Context, employeeID string, now time.Time) (TodayStatusResponse, error)

	// List retrieves records for display.
	List(ctx context.Context, filter Filter) (ListRecordsResponse, error)
}
