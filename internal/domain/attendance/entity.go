package attendance

import (
	"strings"
	"time"
)

// Record is one attendance row per (employee, calendar date). Created
// at clock-in (or by a manual administrative insert), mutated once at
// clock-out, never deleted by the normal flow.
type Record struct {
	ID         string
	EmployeeID string
	BranchID   string
	// Date is the working day, not a timestamp.
	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string
	// ShiftType is the schedule-derived label recorded at clock-in
	// (morning/evening/office), or empty for manual records.
	ShiftType string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusSick    = "sick"
	StatusLeave   = "leave"
	StatusAbsent  = "absent"
)

// EarlyDepartureQualifier is appended to a presence status when the
// employee clocks out well before the scheduled end. Advisory only.
const EarlyDepartureQualifier = " (early departure)"

var ManualStatusValues = []string{
	StatusSick,
	StatusLeave,
	StatusAbsent,
}

// HasEarlyDeparture reports whether a status carries the
// early-departure qualifier.
func HasEarlyDeparture(status string) bool {
	return strings.HasSuffix(status, EarlyDepartureQualifier)
}

// BaseStatus strips the early-departure qualifier.
func BaseStatus(status string) string {
	return strings.TrimSuffix(status, EarlyDepartureQualifier)
}

// IsPresence reports whether the status records a physical presence
// event (as opposed to an excused or unexcused absence).
func IsPresence(status string) bool {
	base := BaseStatus(status)
	return base == StatusPresent || base == StatusLate
}
