package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/handler/http/middleware"
	"github.com/kasirku/pos-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	RecordTransaction(w http.ResponseWriter, r *http.Request)
	RecordExpense(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	sessionService shift.SessionService
}

func NewShiftHandler(sessionService shift.SessionService) ShiftHandler {
	return &shiftHandlerImpl{
		sessionService: sessionService,
	}
}

// Open implements ShiftHandler. The acting cashier and branch come
// from the token, not the body; the terminal only supplies the counted
// float.
func (h *shiftHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
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

	var req shift.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID
	req.BranchID = branchID

	resp, err := h.sessionService.OpenSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift session opened", resp)
}

// RecordTransaction implements ShiftHandler.
func (h *shiftHandlerImpl) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req shift.RecordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = chi.URLParam(r, "id")

	resp, err := h.sessionService.RecordTransaction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// RecordExpense implements ShiftHandler.
func (h *shiftHandlerImpl) RecordExpense(w http.ResponseWriter, r *http.Request) {
	var req shift.RecordExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = chi.URLParam(r, "id")

	resp, err := h.sessionService.RecordExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Close implements ShiftHandler.
func (h *shiftHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req shift.CloseSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.SessionID = chi.URLParam(r, "id")
	req.EmployeeID = employeeID

	resp, err := h.sessionService.CloseSession(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift session closed", resp)
}

// Status implements ShiftHandler.
func (h *shiftHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	branchID, ok := middleware.BranchID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.sessionService.Status(r.Context(), branchID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
