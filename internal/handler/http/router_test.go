package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasirku/pos-backend-go/internal/config"
	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/auth"
	"github.com/kasirku/pos-backend-go/internal/domain/employee"
	"github.com/kasirku/pos-backend-go/internal/domain/payroll"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/pkg/jwt"
)

const routerTestSecret = "test-secret-key-for-jwt"

type stubAuthService struct{}

func (s *stubAuthService) PINLogin(ctx context.Context, req auth.PINLoginRequest) (auth.PINLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.PINLoginResponse{}, err
	}
	if req.PIN != "1234" {
		return auth.PINLoginResponse{}, auth.ErrInvalidPIN
	}
	return auth.PINLoginResponse{
		AccessToken:  "token",
		EmployeeID:   "emp-1",
		EmployeeName: "Dewi Lestari",
		Role:         "cashier",
		BranchID:     req.BranchID,
	}, nil
}

type stubSessionService struct{}

func (s *stubSessionService) OpenSession(ctx context.Context, req shift.OpenSessionRequest) (shift.OpenSessionResponse, error) {
	return shift.OpenSessionResponse{
		Session: shift.SessionResponse{ID: "sess-1", BranchID: req.BranchID, OpenedBy: req.EmployeeID, Status: "open"},
	}, nil
}

func (s *stubSessionService) RecordTransaction(ctx context.Context, req shift.RecordTransactionRequest) (shift.SessionResponse, error) {
	return shift.SessionResponse{ID: req.SessionID, Status: "open"}, nil
}

func (s *stubSessionService) RecordExpense(ctx context.Context, req shift.RecordExpenseRequest) (shift.SessionResponse, error) {
	return shift.SessionResponse{ID: req.SessionID, Status: "open"}, nil
}

func (s *stubSessionService) CloseSession(ctx context.Context, req shift.CloseSessionRequest) (shift.CloseSessionResponse, error) {
	return shift.CloseSessionResponse{Session: shift.SessionResponse{ID: req.SessionID, Status: "closed"}}, nil
}

func (s *stubSessionService) Status(ctx context.Context, branchID string) (shift.StatusResponse, error) {
	return shift.StatusResponse{Open: true, SessionID: "sess-1", ExpectedCash: 100000}, nil
}

type stubAttendanceService struct{}

func (s *stubAttendanceService) HasScheduleToday(ctx context.Context, employeeID string, date time.Time) (attendance.ScheduleToday, error) {
	return attendance.ScheduleToday{Scheduled: true}, nil
}

func (s *stubAttendanceService) ClockIn(ctx context.Context, employeeID, branchID string, now time.Time) (attendance.ClockInResult, error) {
	return attendance.ClockInResult{Record: attendance.Record{Status: attendance.StatusPresent}}, nil
}

func (s *stubAttendanceService) ClockOut(ctx context.Context, employeeID string, now time.Time) (attendance.ClockOutResult, error) {
	return attendance.ClockOutResult{Record: attendance.Record{Status: attendance.StatusPresent}}, nil
}

func (s *stubAttendanceService) ManualRecord(ctx context.Context, req attendance.ManualRecordRequest) (attendance.RecordResponse, error) {
	return attendance.RecordResponse{EmployeeID: req.EmployeeID, Status: req.Status}, nil
}

func (s *stubAttendanceService) TodayStatus(ctx context.Context, employeeID string, now time.Time) (attendance.TodayStatusResponse, error) {
	return attendance.TodayStatusResponse{Scheduled: true}, nil
}

func (s *stubAttendanceService) List(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	return attendance.ListRecordsResponse{Page: 1, Limit: 20}, nil
}

type stubScheduleService struct{}

func (s *stubScheduleService) UpsertWeek(ctx context.Context, req schedule.UpsertWeekRequest) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{WeekStart: req.WeekStart}, nil
}

func (s *stubScheduleService) QueryWeek(ctx context.Context, req schedule.QueryWeekRequest) (schedule.WeekResponse, error) {
	return schedule.WeekResponse{WeekStart: req.WeekStart}, nil
}

type stubPayrollService struct{}

func (s *stubPayrollService) ComputeMonth(ctx context.Context, req payroll.ComputeMonthRequest) (payroll.MonthResponse, error) {
	return payroll.MonthResponse{Month: req.Month}, nil
}

func (s *stubPayrollService) Finalize(ctx context.Context, req payroll.FinalizeRequest) (payroll.PayrollRow, error) {
	return payroll.PayrollRow{EmployeeID: req.EmployeeID, Status: req.Status}, nil
}

func (s *stubPayrollService) Reset(ctx context.Context, req payroll.ResetRequest) error {
	return nil
}

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", FrontendURL: "http://localhost:3000"},
	}
	jwtService := jwt.NewJWTService(routerTestSecret, "1h")

	return NewRouter(
		cfg,
		jwtService,
		NewAuthHandler(&stubAuthService{}),
		NewShiftHandler(&stubSessionService{}),
		NewAttendanceHandler(&stubAttendanceService{}),
		NewScheduleHandler(&stubScheduleService{}),
		NewPayrollHandler(&stubPayrollService{}),
	), jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, role employee.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("emp-1", "branch-1", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestPINLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"branch_id": "branch-1", "pin": "1234"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/pin-login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			EmployeeID string `json:"employee_id"`
			BranchID   string `json:"branch_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "emp-1", resp.Data.EmployeeID)
	assert.Equal(t, "branch-1", resp.Data.BranchID)
}

func TestPINLogin_WrongPIN(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"branch_id": "branch-1", "pin": "9999"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/pin-login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPINLogin_InvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"branch_id": "branch-1", "pin": "abc"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/pin-login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestShiftStatus_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestShiftStatus_WithToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shifts/status", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, employee.RoleCashier))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data shift.StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Open)
	assert.Equal(t, "sess-1", resp.Data.SessionID)
}

func TestPayroll_ManagerOnly(t *testing.T) {
	router, jwtService := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/?month=2026-02", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, employee.RoleCashier))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/payrolls/?month=2026-02", nil)
	req.Header.Set("Authorization", bearerToken(t, jwtService, employee.RoleManager))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScheduleUpsert_ManagerOnly(t *testing.T) {
	router, jwtService := newTestRouter(t)

	body, _ := json.Marshal(schedule.UpsertWeekRequest{EmployeeID: "emp-1", WeekStart: "2026-03-02"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/schedules/", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerToken(t, jwtService, employee.RoleCashier))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
