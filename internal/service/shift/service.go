package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
	"github.com/kasirku/pos-backend-go/internal/pkg/database"
	"github.com/kasirku/pos-backend-go/internal/repository/postgresql"
)

type SessionServiceImpl struct {
	shift.SessionRepository
	attendanceService attendance.AttendanceService
	logger            *slog.Logger
	now               func() time.Time
	// runTx runs fn inside a database transaction carried through the
	// context, so repository calls made by fn share one commit.
	runTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewSessionService(
	db *database.DB,
	sessionRepo shift.SessionRepository,
	attendanceService attendance.AttendanceService,
	logger *slog.Logger,
) shift.SessionService {
	return &SessionServiceImpl{
		SessionRepository: sessionRepo,
		attendanceService: attendanceService,
		logger:            logger,
		now:               time.Now,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

// OpenSession implements shift.SessionService. Ordering matters: the
// schedule precondition is checked first, the session insert settles
// the one-open-per-branch race at the database, and the clock-in is
// recorded in the same transaction so a failed clock-in rolls the
// session back rather than leaving a session without attendance.
func (s *SessionServiceImpl) OpenSession(ctx context.Context, req shift.OpenSessionRequest) (shift.OpenSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.OpenSessionResponse{}, err
	}

	now := s.now()

	sched, err := s.attendanceService.HasScheduleToday(ctx, req.EmployeeID, now)
	if err != nil {
		return shift.OpenSessionResponse{}, err
	}
	if !sched.Scheduled {
		return shift.OpenSessionResponse{}, shift.ErrNotScheduledToday
	}

	session := shift.Session{
		BranchID:     req.BranchID,
		OpenedBy:     req.EmployeeID,
		StartTime:    now,
		InitialCash:  req.InitialCash,
		ExpectedCash: req.InitialCash,
		Status:       shift.StatusOpen,
	}

	var created shift.Session
	var clockIn attendance.ClockInResult
	err = s.runTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.SessionRepository.Create(txCtx, session)
		if txErr != nil {
			return txErr
		}
		clockIn, txErr = s.attendanceService.ClockIn(txCtx, req.EmployeeID, req.BranchID, now)
		return txErr
	})
	if err != nil {
		if errors.Is(err, shift.ErrSessionAlreadyOpen) {
			return shift.OpenSessionResponse{}, shift.ErrSessionAlreadyOpen
		}
		return shift.OpenSessionResponse{}, fmt.Errorf("failed to open shift session: %w", err)
	}

	return shift.OpenSessionResponse{
		Session:          mapSessionToResponse(created),
		AttendanceStatus: clockIn.Record.Status,
		Late:             clockIn.Late,
		LateMinutes:      clockIn.LateMinutes,
		AlreadyCheckedIn: clockIn.AlreadyIn,
	}, nil
}

// RecordTransaction implements shift.SessionService.
func (s *SessionServiceImpl) RecordTransaction(ctx context.Context, req shift.RecordTransactionRequest) (shift.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.SessionResponse{}, err
	}

	method := shift.PaymentMethod(req.PaymentMethod)
	movement := shift.Movement{
		SessionID: req.SessionID,
		Kind:      shift.MovementSale,
		Method:    method,
		Amount:    req.Amount,
	}

	// Non-cash sales enter the ledger but leave the drawer untouched.
	var cashDelta int64
	if method.MovesDrawerCash() {
		cashDelta = req.Amount
	}

	updated, err := s.SessionRepository.RecordMovement(ctx, movement, cashDelta)
	if err != nil {
		return shift.SessionResponse{}, err
	}

	return mapSessionToResponse(updated), nil
}

// RecordExpense implements shift.SessionService.
func (s *SessionServiceImpl) RecordExpense(ctx context.Context, req shift.RecordExpenseRequest) (shift.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.SessionResponse{}, err
	}

	movement := shift.Movement{
		SessionID: req.SessionID,
		Kind:      shift.MovementExpense,
		Method:    shift.PaymentCash,
		Amount:    req.Amount,
	}

	updated, err := s.SessionRepository.RecordMovement(ctx, movement, -req.Amount)
	if err != nil {
		return shift.SessionResponse{}, err
	}

	return mapSessionToResponse(updated), nil
}

// CloseSession implements shift.SessionService.
func (s *SessionServiceImpl) CloseSession(ctx context.Context, req shift.CloseSessionRequest) (shift.CloseSessionResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.CloseSessionResponse{}, err
	}

	now := s.now()

	// GetByID distinguishes a missing session from a closed one; the
	// discrepancy itself is settled inside the Close UPDATE against
	// the live expected cash.
	session, err := s.SessionRepository.GetByID(ctx, req.SessionID)
	if err != nil {
		return shift.CloseSessionResponse{}, err
	}
	if session.Status != shift.StatusOpen {
		return shift.CloseSessionResponse{}, shift.ErrSessionNotOpen
	}

	closed, err := s.SessionRepository.Close(ctx, req.SessionID, req.EmployeeID, req.ActualCash, req.Notes, now)
	if err != nil {
		return shift.CloseSessionResponse{}, err
	}

	var discrepancy int64
	if closed.Discrepancy != nil {
		discrepancy = *closed.Discrepancy
	}

	if discrepancy != 0 {
		s.logger.Warn("drawer discrepancy at close",
			slog.String("session_id", closed.ID),
			slog.String("branch_id", closed.BranchID),
			slog.Int64("expected_cash", closed.ExpectedCash),
			slog.Int64("actual_cash", req.ActualCash),
			slog.Int64("discrepancy", discrepancy),
		)
	}

	clockOut, err := s.attendanceService.ClockOut(ctx, req.EmployeeID, now)
	if err != nil {
		s.logger.Error("clock-out failed during shift close",
			slog.String("session_id", closed.ID),
			slog.String("employee_id", req.EmployeeID),
			slog.Any("error", err),
		)
		return shift.CloseSessionResponse{
			Session:     mapSessionToResponse(closed),
			Discrepancy: discrepancy,
		}, nil
	}

	return shift.CloseSessionResponse{
		Session:        mapSessionToResponse(closed),
		Discrepancy:    discrepancy,
		EarlyDeparture: clockOut.EarlyDeparture,
		EarlyByMinutes: clockOut.EarlyByMinutes,
	}, nil
}

// Status implements shift.SessionService.
func (s *SessionServiceImpl) Status(ctx context.Context, branchID string) (shift.StatusResponse, error) {
	session, err := s.SessionRepository.GetOpenByBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, shift.ErrNoOpenSession) {
			return shift.StatusResponse{Open: false}, nil
		}
		return shift.StatusResponse{}, err
	}

	return shift.StatusResponse{
		Open:         true,
		SessionID:    session.ID,
		ExpectedCash: session.ExpectedCash,
		StartTime:    session.StartTime.Format(time.RFC3339),
		OpenedBy:     session.OpenedBy,
	}, nil
}

// mapSessionToResponse converts a Session entity to SessionResponse
func mapSessionToResponse(session shift.Session) shift.SessionResponse {
	resp := shift.SessionResponse{
		ID:           session.ID,
		BranchID:     session.BranchID,
		OpenedBy:     session.OpenedBy,
		OpenedByName: session.OpenedByName,
		ClosedBy:     session.ClosedBy,
		ClosedByName: session.ClosedByName,
		StartTime:    session.StartTime.Format(time.RFC3339),
		InitialCash:  session.InitialCash,
		ExpectedCash: session.ExpectedCash,
		ActualCash:   session.ActualCash,
		Discrepancy:  session.Discrepancy,
		Notes:        session.Notes,
		Status:       string(session.Status),
	}
	if session.EndTime != nil {
		endTime := session.EndTime.Format(time.RFC3339)
		resp.EndTime = &endTime
	}
	return resp
}
