package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository.
//
// The (employee_id, date) unique index is the authority on the
// one-record-per-day invariant; a violation is reported as
// ErrRecordExists, an expected condition for concurrent clock-ins.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, branch_id, date, check_in, check_out,
			status, shift_type, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, query,
		id,
		record.EmployeeID,
		record.BranchID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.Status,
		record.ShiftType,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.Record{}, attendance.ErrRecordExists
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, branch_id, date, check_in, check_out,
			   status, shift_type, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.ShiftType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $1, status = $2, notes = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, record.CheckOut, record.Status, record.Notes, record.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// ListForEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, branch_id, date, check_in, check_out,
			   status, shift_type, notes, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.ShiftType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.BranchID != nil && *filter.BranchID != "" {
		baseWhere += fmt.Sprintf(" AND a.branch_id = $%d", argIdx)
		args = append(args, *filter.BranchID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.branch_id, a.date, a.check_in, a.check_out,
			   a.status, a.shift_type, a.notes, a.created_at, a.updated_at,
			   e.full_name AS employee_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.ShiftType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// ListMissingCheckOutBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListMissingCheckOutBefore(ctx context.Context, cutoff time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, branch_id, date, check_in, check_out,
			   status, shift_type, notes, created_at, updated_at
		FROM attendances
		WHERE date < $1
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances missing checkout: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.BranchID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.ShiftType, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
