package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) shift.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	s.id, s.branch_id, s.opened_by, s.closed_by, s.start_time, s.end_time,
	s.initial_cash, s.expected_cash, s.actual_cash, s.discrepancy,
	s.notes, s.status, s.created_at, s.updated_at
`

func scanSession(row pgx.Row) (shift.Session, error) {
	var s shift.Session
	err := row.Scan(
		&s.ID, &s.BranchID, &s.OpenedBy, &s.ClosedBy, &s.StartTime, &s.EndTime,
		&s.InitialCash, &s.ExpectedCash, &s.ActualCash, &s.Discrepancy,
		&s.Notes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.SessionRepository.
//
// The partial unique index on (branch_id) WHERE status='open' is the
// authority on the one-open-session-per-branch invariant. Two
// concurrent opens race at the index, not at a read-then-write check.
func (r *sessionRepository) Create(ctx context.Context, session shift.Session) (shift.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_sessions (
			id, branch_id, opened_by, start_time, initial_cash,
			expected_cash, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, query,
		id,
		session.BranchID,
		session.OpenedBy,
		session.StartTime,
		session.InitialCash,
		session.ExpectedCash,
		string(shift.StatusOpen),
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return shift.Session{}, shift.ErrSessionAlreadyOpen
		}
		return shift.Session{}, fmt.Errorf("failed to create shift session: %w", err)
	}

	session.Status = shift.StatusOpen
	return session, nil
}

// GetByID implements shift.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (shift.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `,
			   eo.full_name AS opened_by_name,
			   ec.full_name AS closed_by_name
		FROM shift_sessions s
		LEFT JOIN employees eo ON eo.id = s.opened_by
		LEFT JOIN employees ec ON ec.id = s.closed_by
		WHERE s.id = $1
	`

	var s shift.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.BranchID, &s.OpenedBy, &s.ClosedBy, &s.StartTime, &s.EndTime,
		&s.InitialCash, &s.ExpectedCash, &s.ActualCash, &s.Discrepancy,
		&s.Notes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.OpenedByName, &s.ClosedByName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Session{}, shift.ErrSessionNotFound
		}
		return shift.Session{}, fmt.Errorf("failed to get shift session by ID: %w", err)
	}

	return s, nil
}

// GetOpenByBranch implements shift.SessionRepository.
func (r *sessionRepository) GetOpenByBranch(ctx context.Context, branchID string) (shift.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM shift_sessions s
		WHERE s.branch_id = $1 AND s.status = 'open'
		LIMIT 1
	`

	s, err := scanSession(q.QueryRow(ctx, query, branchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Session{}, shift.ErrNoOpenSession
		}
		return shift.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return s, nil
}

// RecordMovement implements shift.SessionRepository.
//
// The ledger insert and the expected-cash adjustment commit together;
// the adjustment is an in-place increment so concurrent movements
// never lose updates.
func (r *sessionRepository) RecordMovement(ctx context.Context, movement shift.Movement, cashDelta int64) (shift.Session, error) {
	var updated shift.Session

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		updateQuery := `
			UPDATE shift_sessions
			SET expected_cash = expected_cash + $1, updated_at = NOW()
			WHERE id = $2 AND status = 'open'
			RETURNING id, branch_id, opened_by, closed_by, start_time, end_time,
					  initial_cash, expected_cash, actual_cash, discrepancy,
					  notes, status, created_at, updated_at
		`
		s, err := scanSession(tx.QueryRow(ctx, updateQuery, cashDelta, movement.SessionID))
		if err != nil {
			if err == pgx.ErrNoRows {
				return shift.ErrSessionNotOpen
			}
			return fmt.Errorf("failed to adjust expected cash: %w", err)
		}

		insertQuery := `
			INSERT INTO session_movements (id, session_id, kind, method, amount)
			VALUES ($1, $2, $3, $4, $5)
		`
		id := uuid.Must(uuid.NewV7()).String()
		if _, err := tx.Exec(ctx, insertQuery,
			id, movement.SessionID, string(movement.Kind), string(movement.Method), movement.Amount,
		); err != nil {
			return fmt.Errorf("failed to insert session movement: %w", err)
		}

		updated = s
		return nil
	})
	if err != nil {
		return shift.Session{}, err
	}

	return updated, nil
}

// Close implements shift.SessionRepository.
//
// The discrepancy is computed inside the UPDATE against the row's
// current expected_cash, not from a value read earlier, so a movement
// committing between the caller's status check and the close cannot
// leave discrepancy inconsistent with actual - expected.
func (r *sessionRepository) Close(ctx context.Context, id string, closedBy string, actualCash int64, notes *string, endTime time.Time) (shift.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_sessions
		SET status = 'closed', closed_by = $1, end_time = $2,
			actual_cash = $3, discrepancy = $3 - expected_cash,
			notes = $4, updated_at = NOW()
		WHERE id = $5 AND status = 'open'
		RETURNING id, branch_id, opened_by, closed_by, start_time, end_time,
				  initial_cash, expected_cash, actual_cash, discrepancy,
				  notes, status, created_at, updated_at
	`

	s, err := scanSession(q.QueryRow(ctx, query, closedBy, endTime, actualCash, notes, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Session{}, shift.ErrSessionNotOpen
		}
		return shift.Session{}, fmt.Errorf("failed to close shift session: %w", err)
	}

	return s, nil
}

// ListMovements implements shift.SessionRepository.
func (r *sessionRepository) ListMovements(ctx context.Context, sessionID string) ([]shift.Movement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, session_id, kind, method, amount, created_at
		FROM session_movements
		WHERE session_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session movements: %w", err)
	}
	defer rows.Close()

	var movements []shift.Movement
	for rows.Next() {
		var m shift.Movement
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Kind, &m.Method, &m.Amount, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session movement: %w", err)
		}
		movements = append(movements, m)
	}

	return movements, nil
}

// ListOpenBefore implements shift.SessionRepository.
func (r *sessionRepository) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]shift.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + sessionColumns + `
		FROM shift_sessions s
		WHERE s.status = 'open' AND s.start_time < $1
		ORDER BY s.start_time
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []shift.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
