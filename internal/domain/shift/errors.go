package shift

import "errors"

// Shift session domain errors
var (
	// ErrSessionAlreadyOpen is a recoverable precondition violation:
	// the operator should reuse the existing session or retry after
	// it is closed.
	ErrSessionAlreadyOpen = errors.New("branch already has an open shift session")

	ErrSessionNotFound = errors.New("shift session not found")
	ErrSessionNotOpen  = errors.New("shift session is not open")
	ErrNoOpenSession   = errors.New("branch has no open shift session")

	// ErrNotScheduledToday blocks session open: a cashier without a
	// schedule row (or on a day off) must not open the drawer.
	ErrNotScheduledToday = errors.New("no schedule for today - shift cannot open")

	ErrNegativeAmount = errors.New("cash amount must not be negative")
)
