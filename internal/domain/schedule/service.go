package schedule

import "context"

type ScheduleService interface {
	// UpsertWeek publishes (or republishes) one employee's
	// assignments for a week. Replaces existing rows per day.
	UpsertWeek(ctx context.Context, req UpsertWeekRequest) (WeekResponse, error)

	// QueryWeek returns the published rows for a week.
	QueryWeek(ctx context.Context, req QueryWeekRequest) (WeekResponse, error)
}
