package shift

import "time"

// Session is the lifecycle of a branch's cash drawer: opened with a
// counted float, accumulating cash sales and expenses into an expected
// balance, closed against the counted actual. At most one open session
// exists per branch at any time.
type Session struct {
	ID         string
	BranchID   string
	OpenedBy   string
	ClosedBy   *string
	StartTime  time.Time
	EndTime    *time.Time
	// Cash amounts are minor currency units. ExpectedCash is the
	// running drawer balance: initial + cash sales - expenses.
	InitialCash  int64
	ExpectedCash int64
	ActualCash   *int64
	// Discrepancy = actual - expected at close. Signed: positive is
	// an overage, negative a shortage. Advisory, never fatal.
	Discrepancy *int64
	Notes       *string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	OpenedByName *string
	ClosedByName *string
}

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Movement is one immutable ledger entry against an open session.
// Movements are never edited or deleted; the expected cash balance is
// derived from them plus the initial float.
type Movement struct {
	ID        string
	SessionID string
	Kind      MovementKind
	Method    PaymentMethod
	Amount    int64
	CreatedAt time.Time
}

type MovementKind string

const (
	MovementSale    MovementKind = "sale"
	MovementExpense MovementKind = "expense"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentQRIS PaymentMethod = "qris"
	PaymentCard PaymentMethod = "card"
)

var PaymentMethodValues = []string{
	string(PaymentCash),
	string(PaymentQRIS),
	string(PaymentCard),
}

// MovesDrawerCash reports whether a sale paid with this method changes
// the physical drawer balance. Expenses always do.
func (m PaymentMethod) MovesDrawerCash() bool {
	return m == PaymentCash
}
