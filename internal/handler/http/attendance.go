package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/handler/http/middleware"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn implements AttendanceHandler. Standalone clock-in for staff
// who track attendance without operating a drawer.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	branchID, ok := middleware.BranchID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), employeeID, branchID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result.AlreadyIn {
		response.HandleError(w, attendance.ErrAlreadyCheckedIn)
		return
	}

	response.Created(w, "Clocked in", map[string]interface{}{
		"status":       result.Record.Status,
		"late":         result.Late,
		"late_minutes": result.LateMinutes,
		"shift_type":   result.ShiftType,
	})
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if result.NoRecordForToday {
		response.HandleError(w, attendance.ErrNotCheckedIn)
		return
	}
	if result.AlreadyCheckedOut {
		response.HandleError(w, attendance.ErrAlreadyCheckedOut)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", map[string]interface{}{
		"status":           result.Record.Status,
		"early_departure":  result.EarlyDeparture,
		"early_by_minutes": result.EarlyByMinutes,
	})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.attendanceService.TodayStatus(r.Context(), employeeID, time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AttendanceHandler. Management view over attendance
// records, filterable by employee, date range and status.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.Filter{}

	q := r.URL.Query()
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("branch_id"); v != "" {
		filter.BranchID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	resp, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Records, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: resp.TotalPages,
	})
}

// CreateManual implements AttendanceHandler. Managers record sick,
// leave and absent days that have no clock events.
func (h *attendanceHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.ManualRecord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", resp)
}
