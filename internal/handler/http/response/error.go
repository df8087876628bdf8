package response

import (
	"errors"
	"net/http"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN for this branch")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Shift session domain errors
	case errors.Is(err, shift.ErrSessionAlreadyOpen):
		Conflict(w, "Branch already has an open shift session")
	case errors.Is(err, shift.ErrSessionNotFound):
		NotFound(w, "Shift session not found")
	case errors.Is(err, shift.ErrSessionNotOpen):
		Conflict(w, "Shift session is not open")
	case errors.Is(err, shift.ErrNoOpenSession):
		NotFound(w, "Branch has no open shift session")
	case errors.Is(err, shift.ErrNotScheduledToday):
		Forbidden(w, "No schedule for today - shift cannot open")
	case errors.Is(err, shift.ErrNegativeAmount):
		BadRequest(w, "Cash amount must not be negative", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in today")
	case errors.Is(err, attendance.ErrNoScheduleToday):
		Forbidden(w, "No schedule for today")
	case errors.Is(err, attendance.ErrDayOff):
		Forbidden(w, "Today is a scheduled day off")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has not checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRecordExists):
		Conflict(w, "An attendance record already exists for this day")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule row not found")
	case errors.Is(err, schedule.ErrInvalidShiftType):
		BadRequest(w, "Invalid shift type", nil)
	case errors.Is(err, schedule.ErrMissingShiftTimes):
		BadRequest(w, "Start and end time are required for working shift types", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, "Invalid date format, use YYYY-MM-DD", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrInvalidStatus):
		BadRequest(w, "Payroll status must be draft or paid", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
