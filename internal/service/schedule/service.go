package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
	loc *time.Location
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, loc *time.Location) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ScheduleRepository: scheduleRepo,
		loc:                loc,
	}
}

// UpsertWeek implements schedule.ScheduleService. The submitted
// week_start is normalized to the Monday of its ISO week, so callers
// may send any date inside the week.
func (s *ScheduleServiceImpl) UpsertWeek(ctx context.Context, req schedule.UpsertWeekRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}

	parsed, err := time.ParseInLocation("2006-01-02", req.WeekStart, s.loc)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("invalid week_start: %w", err)
	}
	weekStart := schedule.WeekStartOf(parsed)

	rows := make([]schedule.ScheduleRowResponse, 0, len(req.Days))
	for _, day := range req.Days {
		row := schedule.ShiftSchedule{
			EmployeeID: req.EmployeeID,
			WeekStart:  weekStart,
			DayOfWeek:  day.DayOfWeek,
			ShiftType:  schedule.ShiftType(day.ShiftType),
		}
		if row.IsWorkday() {
			row.StartTime = day.StartTime
			row.EndTime = day.EndTime
		}

		saved, err := s.ScheduleRepository.Upsert(ctx, row)
		if err != nil {
			return schedule.WeekResponse{}, fmt.Errorf("failed to upsert schedule row: %w", err)
		}
		rows = append(rows, mapRowToResponse(saved))
	}

	return schedule.WeekResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Rows:      rows,
	}, nil
}

// QueryWeek implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) QueryWeek(ctx context.Context, req schedule.QueryWeekRequest) (schedule.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WeekResponse{}, err
	}

	parsed, err := time.ParseInLocation("2006-01-02", req.WeekStart, s.loc)
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("invalid week_start: %w", err)
	}
	weekStart := schedule.WeekStartOf(parsed)

	found, err := s.ScheduleRepository.Query(ctx, weekStart, schedule.QueryFilter{
		BranchID:   req.BranchID,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		return schedule.WeekResponse{}, fmt.Errorf("failed to query schedules: %w", err)
	}

	rows := make([]schedule.ScheduleRowResponse, 0, len(found))
	for _, row := range found {
		rows = append(rows, mapRowToResponse(row))
	}

	return schedule.WeekResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Rows:      rows,
	}, nil
}

// mapRowToResponse converts a ShiftSchedule entity to ScheduleRowResponse
func mapRowToResponse(row schedule.ShiftSchedule) schedule.ScheduleRowResponse {
	return schedule.ScheduleRowResponse{
		ID:           row.ID,
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		WeekStart:    row.WeekStart.Format("2006-01-02"),
		DayOfWeek:    row.DayOfWeek,
		ShiftType:    string(row.ShiftType),
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
	}
}
