package schedule

import "time"

// ShiftSchedule is one published assignment of an employee to a shift
// type (or a day off) for one day of one week. At most one row exists
// per (employee, week start, day of week).
type ShiftSchedule struct {
	ID         string
	EmployeeID string
	// WeekStart is the Monday of the ISO week the row belongs to.
	WeekStart time.Time
	// DayOfWeek is 0=Monday .. 6=Sunday.
	DayOfWeek int
	ShiftType ShiftType
	// StartTime/EndTime are "HH:MM" and present only for working
	// shift types.
	StartTime *string
	EndTime   *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

type ShiftType string

const (
	ShiftTypeMorning ShiftType = "morning"
	ShiftTypeEvening ShiftType = "evening"
	ShiftTypeOffice  ShiftType = "office"
	ShiftTypeDayOff  ShiftType = "day_off"
)

var ShiftTypeValues = []string{
	string(ShiftTypeMorning),
	string(ShiftTypeEvening),
	string(ShiftTypeOffice),
	string(ShiftTypeDayOff),
}

// IsWorkday reports whether the row assigns actual working hours.
func (s ShiftSchedule) IsWorkday() bool {
	return s.ShiftType != ShiftTypeDayOff
}

// WeekStartOf returns the Monday of the ISO week containing t, at
// midnight in t's location.
func WeekStartOf(t time.Time) time.Time {
	day := t.Weekday()
	offset := (int(day) + 6) % 7 // Monday=0 .. Sunday=6
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// DayOfWeekOf returns the 0=Monday .. 6=Sunday index of t.
func DayOfWeekOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
