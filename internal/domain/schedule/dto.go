package schedule

import (
	"github.com/kasirku/pos-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type DayAssignment struct {
	DayOfWeek int     `json:"day_of_week"`
	ShiftType string  `json:"shift_type"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}

type UpsertWeekRequest struct {
	EmployeeID string          `json:"employee_id"`
	WeekStart  string          `json:"week_start"`
	Days       []DayAssignment `json:"days"`
}

func (r *UpsertWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(r.Days) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one day assignment is required",
		})
	}

	for _, day := range r.Days {
		if day.DayOfWeek < 0 || day.DayOfWeek > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "days.day_of_week",
				Message: "day_of_week must be between 0 (Monday) and 6 (Sunday)",
			})
			continue
		}
		if !validator.IsInSlice(day.ShiftType, ShiftTypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "days.shift_type",
				Message: "shift_type must be one of morning, evening, office, day_off",
			})
			continue
		}
		if day.ShiftType != string(ShiftTypeDayOff) {
			if day.StartTime == nil || !validator.IsValidTimeOfDay(*day.StartTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "days.start_time",
					Message: "start_time (HH:MM) is required for working shift types",
				})
			}
			if day.EndTime == nil || !validator.IsValidTimeOfDay(*day.EndTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "days.end_time",
					Message: "end_time (HH:MM) is required for working shift types",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QueryWeekRequest struct {
	WeekStart  string  `json:"week_start"`
	BranchID   *string `json:"branch_id,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *QueryWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WeekStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a valid date (YYYY-MM-DD)",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleRowResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	WeekStart    string  `json:"week_start"`
	DayOfWeek    int     `json:"day_of_week"`
	ShiftType    string  `json:"shift_type"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
}

type WeekResponse struct {
	WeekStart string                `json:"week_start"`
	Rows      []ScheduleRowResponse `json:"rows"`
}
