package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepository) Upsert(ctx context.Context, row schedule.ShiftSchedule) (schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_schedules (
			id, employee_id, week_start, day_of_week, shift_type, start_time, end_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, week_start, day_of_week) DO UPDATE SET
			shift_type = EXCLUDED.shift_type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, query,
		id,
		row.EmployeeID,
		row.WeekStart,
		row.DayOfWeek,
		string(row.ShiftType),
		row.StartTime,
		row.EndTime,
	).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)

	if err != nil {
		return schedule.ShiftSchedule{}, fmt.Errorf("failed to upsert schedule row: %w", err)
	}

	return row, nil
}

// Query implements schedule.ScheduleRepository.
func (r *scheduleRepository) Query(ctx context.Context, weekStart time.Time, filter schedule.QueryFilter) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "s.week_start = $1"
	args := []interface{}{weekStart}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		baseWhere += fmt.Sprintf(" AND e.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.employee_id, s.week_start, s.day_of_week, s.shift_type,
			   s.start_time, s.end_time, s.created_at, s.updated_at,
			   e.full_name AS employee_name
		FROM shift_schedules s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.day_of_week, e.full_name
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule rows: %w", err)
	}
	defer rows.Close()

	var result []schedule.ShiftSchedule
	for rows.Next() {
		var s schedule.ShiftSchedule
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.WeekStart, &s.DayOfWeek, &s.ShiftType,
			&s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
			&s.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		result = append(result, s)
	}

	return result, nil
}

// GetForEmployeeDay implements schedule.ScheduleRepository.
func (r *scheduleRepository) GetForEmployeeDay(ctx context.Context, employeeID string, weekStart time.Time, dayOfWeek int) (*schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, week_start, day_of_week, shift_type,
			   start_time, end_time, created_at, updated_at
		FROM shift_schedules
		WHERE employee_id = $1 AND week_start = $2 AND day_of_week = $3
		LIMIT 1
	`

	var s schedule.ShiftSchedule
	err := q.QueryRow(ctx, query, employeeID, weekStart, dayOfWeek).Scan(
		&s.ID, &s.EmployeeID, &s.WeekStart, &s.DayOfWeek, &s.ShiftType,
		&s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No schedule row published for this day
		}
		return nil, fmt.Errorf("failed to get schedule row: %w", err)
	}

	return &s, nil
}

// ListForEmployeeBetween implements schedule.ScheduleRepository.
func (r *scheduleRepository) ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.ShiftSchedule, error) {
	q := GetQuerier(ctx, r.db)

	// A week overlaps [from, to] when its Monday falls within six
	// days before the range start and the range end.
	query := `
		SELECT id, employee_id, week_start, day_of_week, shift_type,
			   start_time, end_time, created_at, updated_at
		FROM shift_schedules
		WHERE employee_id = $1
		  AND week_start >= $2::date - 6
		  AND week_start <= $3
		ORDER BY week_start, day_of_week
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule rows: %w", err)
	}
	defer rows.Close()

	var result []schedule.ShiftSchedule
	for rows.Next() {
		var s schedule.ShiftSchedule
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.WeekStart, &s.DayOfWeek, &s.ShiftType,
			&s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		result = append(result, s)
	}

	return result, nil
}
