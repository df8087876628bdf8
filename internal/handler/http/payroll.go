package http

import (
	"encoding/json"
	"net/http"

	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputeMonth(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ComputeMonth implements PayrollHandler.
func (h *payrollHandlerImpl) ComputeMonth(w http.ResponseWriter, r *http.Request) {
	req := payroll.ComputeMonthRequest{
		Month: r.URL.Query().Get("month"),
	}
	if v := r.URL.Query().Get("branch_id"); v != "" {
		req.BranchID = &v
	}

	resp, err := h.payrollService.ComputeMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Finalize implements PayrollHandler.
func (h *payrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	var req payroll.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.Finalize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record finalized", resp)
}

// Reset implements PayrollHandler.
func (h *payrollHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	var req payroll.ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.Reset(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record reset to draft", nil)
}
