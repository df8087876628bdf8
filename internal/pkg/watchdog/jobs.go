package watchdog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kasirku/pos-backend-go/internal/config"
	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/shift"
)

// StoreJobs holds the advisory checks over sessions and attendance.
// Closing a forgotten drawer requires a human count of the cash, so
// the jobs surface anomalies in the log instead of acting on them.
type StoreJobs struct {
	sessionRepo    shift.SessionRepository
	attendanceRepo attendance.AttendanceRepository
	cfg            config.WatchdogConfig
	logger         *slog.Logger
	loc            *time.Location
}

func NewStoreJobs(
	sessionRepo shift.SessionRepository,
	attendanceRepo attendance.AttendanceRepository,
	cfg config.WatchdogConfig,
	logger *slog.Logger,
	loc *time.Location,
) *StoreJobs {
	return &StoreJobs{
		sessionRepo:    sessionRepo,
		attendanceRepo: attendanceRepo,
		cfg:            cfg,
		logger:         logger,
		loc:            loc,
	}
}

func (j *StoreJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_sessions", j.cfg.Interval, j.ReportStaleSessions)
	scheduler.AddJob("report_missing_clock_outs", j.cfg.Interval, j.ReportMissingClockOuts)
}

// ReportStaleSessions logs sessions that have stayed open longer than
// the configured threshold, usually a drawer nobody closed at the end
// of the day.
func (j *StoreJobs) ReportStaleSessions(ctx context.Context) error {
	cutoff := time.Now().Add(-time.Duration(j.cfg.StaleSessionHours) * time.Hour)

	sessions, err := j.sessionRepo.ListOpenBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale sessions: %w", err)
	}

	for _, session := range sessions {
		j.logger.Warn("shift session open past threshold",
			slog.String("session_id", session.ID),
			slog.String("branch_id", session.BranchID),
			slog.String("opened_by", session.OpenedBy),
			slog.Time("start_time", session.StartTime),
			slog.Int64("expected_cash", session.ExpectedCash),
		)
	}
	return nil
}

// ReportMissingClockOuts logs attendance records from previous days
// that were never closed with a clock-out.
func (j *StoreJobs) ReportMissingClockOuts(ctx context.Context) error {
	now := time.Now().In(j.loc)
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc)

	records, err := j.attendanceRepo.ListMissingCheckOutBefore(ctx, startOfToday)
	if err != nil {
		return fmt.Errorf("failed to list records missing clock-out: %w", err)
	}

	for _, record := range records {
		j.logger.Warn("attendance record missing clock-out",
			slog.String("record_id", record.ID),
			slog.String("employee_id", record.EmployeeID),
			slog.String("date", record.Date.Format("2006-01-02")),
			slog.String("status", record.Status),
		)
	}
	return nil
}
