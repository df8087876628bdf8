package schedule

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule row not found")
	ErrInvalidShiftType  = errors.New("invalid shift type")
	ErrMissingShiftTimes = errors.New("start and end time are required for working shift types")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)
