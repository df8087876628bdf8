package payroll

import (
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

type ComputeMonthRequest struct {
	// Month is "YYYY-MM".
	Month    string  `json:"month"`
	BranchID *string `json:"branch_id,omitempty"`
}

func (r *ComputeMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid period (YYYY-MM)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FinalizeRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Status     string `json:"status"`
}

func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid period (YYYY-MM)",
		})
	}

	if r.Status != string(PayrollStatusDraft) && r.Status != string(PayrollStatusPaid) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be draft or paid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r *ResetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a valid period (YYYY-MM)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayrollRow is one employee's figure for a month, either computed
// live (draft) or loaded from a finalized record. The two forms are
// structurally identical; only Status (and ID/PaidAt) differ.
type PayrollRow struct {
	ID              string  `json:"id,omitempty"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	Month           string  `json:"month"`
	ScheduledDays   int     `json:"scheduled_days"`
	AttendanceDays  int     `json:"attendance_days"`
	ExcusedDays     int     `json:"excused_days"`
	AlphaDays       int     `json:"alpha_days"`
	BaseSalary      string  `json:"base_salary"`
	DeductionAmount string  `json:"deduction_amount"`
	TotalDeduction  string  `json:"total_deduction"`
	TotalSalary     string  `json:"total_salary"`
	Status          string  `json:"status"`
	PaidAt          *string `json:"paid_at,omitempty"`
}

type MonthResponse struct {
	Month string       `json:"month"`
	Rows  []PayrollRow `json:"rows"`
}
