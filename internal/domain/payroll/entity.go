package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusDraft PayrollStatus = "draft"
	PayrollStatusPaid  PayrollStatus = "paid"
)

// PayrollRecord is the finalized payroll result for one employee and
// one month. The day-count breakdown is a snapshot frozen at
// computation time; a finalized record is immutable until Reset.
//
// Before finalization the same shape is produced live by the
// aggregator with Status=draft and an empty ID.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int

	// Snapshot of the day-count breakdown.
	ScheduledDays  int
	AttendanceDays int
	ExcusedDays    int
	AlphaDays      int

	BaseSalary      decimal.Decimal
	DeductionAmount decimal.Decimal
	TotalDeduction  decimal.Decimal
	TotalSalary     decimal.Decimal

	Status PayrollStatus
	PaidAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	BranchID     *string
}
