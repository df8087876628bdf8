package shift

import (
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT SESSION DTOs
// ========================================

type OpenSessionRequest struct {
	BranchID    string `json:"branch_id"`
	EmployeeID  string `json:"employee_id"`
	InitialCash int64  `json:"initial_cash"`
}

func (r *OpenSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.InitialCash < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "initial_cash",
			Message: "initial_cash must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordTransactionRequest struct {
	SessionID     string `json:"session_id"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

func (r *RecordTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if !validator.IsInSlice(r.PaymentMethod, PaymentMethodValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method must be one of cash, qris, card",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordExpenseRequest struct {
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
}

func (r *RecordExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CloseSessionRequest struct {
	SessionID  string  `json:"session_id"`
	EmployeeID string  `json:"employee_id"`
	ActualCash int64   `json:"actual_cash"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CloseSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.ActualCash < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "actual_cash",
			Message: "actual_cash must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID           string  `json:"id"`
	BranchID     string  `json:"branch_id"`
	OpenedBy     string  `json:"opened_by"`
	OpenedByName *string `json:"opened_by_name,omitempty"`
	ClosedBy     *string `json:"closed_by,omitempty"`
	ClosedByName *string `json:"closed_by_name,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      *string `json:"end_time,omitempty"`
	InitialCash  int64   `json:"initial_cash"`
	ExpectedCash int64   `json:"expected_cash"`
	ActualCash   *int64  `json:"actual_cash,omitempty"`
	Discrepancy  *int64  `json:"discrepancy,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	Status       string  `json:"status"`
}

// OpenSessionResponse carries the new session plus the advisory
// attendance outcome so the operator can be warned about lateness
// without the open being blocked.
type OpenSessionResponse struct {
	Session          SessionResponse `json:"session"`
	AttendanceStatus string          `json:"attendance_status"`
	Late             bool            `json:"late"`
	LateMinutes      int             `json:"late_minutes,omitempty"`
	AlreadyCheckedIn bool            `json:"already_checked_in"`
}

// CloseSessionResponse reports the reconciliation result and the
// advisory early-departure outcome.
type CloseSessionResponse struct {
	Session        SessionResponse `json:"session"`
	Discrepancy    int64           `json:"discrepancy"`
	EarlyDeparture bool            `json:"early_departure"`
	EarlyByMinutes int             `json:"early_by_minutes,omitempty"`
}

// StatusResponse is the display query for the cashier screen.
type StatusResponse struct {
	Open         bool   `json:"open"`
	SessionID    string `json:"session_id,omitempty"`
	ExpectedCash int64  `json:"expected_cash,omitempty"`
	StartTime    string `json:"start_time,omitempty"`
	OpenedBy     string `json:"opened_by,omitempty"`
}
