package shift

import "context"

type SessionService interface {
	// OpenSession opens the branch drawer and clocks the cashier in.
	// Fails with ErrSessionAlreadyOpen when the branch already has an
	// open session, and with ErrNotScheduledToday when the cashier
	// has no working schedule for today.
	OpenSession(ctx context.Context, req OpenSessionRequest) (OpenSessionResponse, error)

	// RecordTransaction reports a sale into the open session. Only
	// cash payments move the expected drawer balance.
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (SessionResponse, error)

	// RecordExpense reports a cash expense drawn from the drawer.
	RecordExpense(ctx context.Context, req RecordExpenseRequest) (SessionResponse, error)

	// CloseSession reconciles the drawer and clocks the cashier out.
	// Discrepancy and early departure are advisory.
	CloseSession(ctx context.Context, req CloseSessionRequest) (CloseSessionResponse, error)

	// Status reports whether the branch has an open session and its
	// current expected cash.
	Status(ctx context.Context, branchID string) (StatusResponse, error)
}
