package shift

import (
	"context"
	"time"
)

// SessionRepository defines data access for shift sessions and their
// movement ledger. One-open-session-per-branch is enforced by a
// partial unique index on (branch_id) WHERE status='open'; Create maps
// the violation to ErrSessionAlreadyOpen instead of trusting a
// check-then-insert sequence.
type SessionRepository interface {
	// Create inserts a new open session. Returns
	// ErrSessionAlreadyOpen when the branch already has one.
	Create(ctx context.Context, session Session) (Session, error)

	// GetByID retrieves a session by ID.
	GetByID(ctx context.Context, id string) (Session, error)

	// GetOpenByBranch returns the branch's open session, or
	// ErrNoOpenSession.
	GetOpenByBranch(ctx context.Context, branchID string) (Session, error)

	// RecordMovement appends a ledger entry and applies cashDelta to
	// expected_cash in the same transaction, as an atomic in-place
	// increment guarded by status='open'. Returns ErrSessionNotOpen
	// when the session is missing or closed. cashDelta is zero for
	// non-cash sales.
	RecordMovement(ctx context.Context, movement Movement, cashDelta int64) (Session, error)

	// Close finalizes the session: stamps actual cash, end time and
	// the closing employee, guarded by status='open'. The discrepancy
	// is settled in the same statement against the live expected cash,
	// so a movement landing just before the close cannot skew it.
	Close(ctx context.Context, id string, closedBy string, actualCash int64, notes *string, endTime time.Time) (Session, error)

	// ListMovements returns the session's ledger ordered by
	// creation time.
	ListMovements(ctx context.Context, sessionID string) ([]Movement, error)

	// ListOpenBefore returns sessions still open whose start time is
	// before cutoff. Used by the watchdog advisory job.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Session, error)
}
