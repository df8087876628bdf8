package attendance

import (
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ManualRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	BranchID   string  `json:"branch_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ManualRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	if !validator.IsInSlice(r.Status, ManualStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of sick, leave, absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string
	BranchID   *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	BranchID     string  `json:"branch_id"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	ShiftType    string  `json:"shift_type,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// TodayStatusResponse is consumed by the cashier screen to decide
// whether a clock-in action is still needed.
type TodayStatusResponse struct {
	Scheduled    bool    `json:"scheduled"`
	ShiftType    string  `json:"shift_type,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	CheckedIn    bool    `json:"checked_in"`
	CheckedOut   bool    `json:"checked_out"`
	Status       string  `json:"status,omitempty"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

// ClockInResult is returned to the shift session manager so it can
// surface lateness to the operator without blocking the open flow.
type ClockInResult struct {
	Record       Record
	Late         bool
	LateMinutes  int
	AlreadyIn    bool
	ShiftType    string
	ScheduledEnd *string
}

// ClockOutResult carries the advisory early-departure outcome.
type ClockOutResult struct {
	Record            Record
	EarlyDeparture    bool
	EarlyByMinutes    int
	AlreadyCheckedOut bool
	NoRecordForToday  bool
}
