package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyCheckedIn = errors.New("employee has already checked in today")
	ErrNoScheduleToday  = errors.New("no schedule for today")
	ErrDayOff           = errors.New("today is a scheduled day off")

	// Clock-out errors
	ErrNotCheckedIn      = errors.New("employee has not checked in today")
	ErrAlreadyCheckedOut = errors.New("employee has already checked out today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrRecordExists   = errors.New("an attendance record already exists for this day")
)
