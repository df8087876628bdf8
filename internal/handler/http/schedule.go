package http

import (
	"encoding/json"
	"net/http"

	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	UpsertWeek(w http.ResponseWriter, r *http.Request)
	QueryWeek(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// UpsertWeek implements ScheduleHandler.
func (h *scheduleHandlerImpl) UpsertWeek(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.scheduleService.UpsertWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Week schedule published", resp)
}

// QueryWeek implements ScheduleHandler.
func (h *scheduleHandlerImpl) QueryWeek(w http.ResponseWriter, r *http.Request) {
	req := schedule.QueryWeekRequest{
		WeekStart: r.URL.Query().Get("week_start"),
	}
	if v := r.URL.Query().Get("branch_id"); v != "" {
		req.BranchID = &v
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		req.EmployeeID = &v
	}

	resp, err := h.scheduleService.QueryWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
