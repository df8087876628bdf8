package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kasirku/pos-backend-go/internal/config"
	"github.com/kasirku/pos-backend-go/internal/domain/attendance"
	"github.com/kasirku/pos-backend-go/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	schedule.ScheduleRepository
	policy config.AttendanceConfig
	loc    *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	policy config.AttendanceConfig,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
		policy:               policy,
		loc:                  loc,
	}
}

// dayOf truncates t to its calendar date in the service location.
func (a *AttendanceServiceImpl) dayOf(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
}

// timeOn combines a "HH:MM" schedule value with a calendar date.
func timeOn(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// HasScheduleToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) HasScheduleToday(ctx context.Context, employeeID string, date time.Time) (attendance.ScheduleToday, error) {
	day := a.dayOf(date)
	weekStart := schedule.WeekStartOf(day)
	dayOfWeek := schedule.DayOfWeekOf(day)

	row, err := a.ScheduleRepository.GetForEmployeeDay(ctx, employeeID, weekStart, dayOfWeek)
	if err != nil {
		return attendance.ScheduleToday{}, fmt.Errorf("failed to look up schedule: %w", err)
	}

	if row == nil || !row.IsWorkday() {
		return attendance.ScheduleToday{Scheduled: false}, nil
	}

	return attendance.ScheduleToday{
		Scheduled: true,
		ShiftType: string(row.ShiftType),
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
	}, nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID, branchID string, now time.Time) (attendance.ClockInResult, error) {
	nowLocal := now.In(a.loc)
	day := a.dayOf(now)

	sched, err := a.HasScheduleToday(ctx, employeeID, day)
	if err != nil {
		return attendance.ClockInResult{}, err
	}
	if !sched.Scheduled {
		return attendance.ClockInResult{}, attendance.ErrNoScheduleToday
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.ClockInResult{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		// Already checked in today: reported, not fatal, so the
		// shift-open flow can proceed against the existing record.
		return attendance.ClockInResult{
			Record:       *existing,
			AlreadyIn:    true,
			ShiftType:    sched.ShiftType,
			ScheduledEnd: sched.EndTime,
		}, nil
	}

	status := attendance.StatusPresent
	lateMinutes := 0
	if sched.StartTime != nil {
		scheduledStart, err := timeOn(day, *sched.StartTime, a.loc)
		if err != nil {
			return attendance.ClockInResult{}, err
		}
		graceLimit := scheduledStart.Add(time.Duration(a.policy.GraceMinutes) * time.Minute)
		if nowLocal.After(graceLimit) {
			status = attendance.StatusLate
			// Lateness is measured from the scheduled start, not
			// from the end of the grace period.
			diff := nowLocal.Sub(scheduledStart).Minutes()
			if diff > 0 {
				lateMinutes = int(math.Floor(diff))
			}
		}
	}

	record := attendance.Record{
		EmployeeID: employeeID,
		BranchID:   branchID,
		Date:       day,
		CheckIn:    &nowLocal,
		Status:     status,
		ShiftType:  sched.ShiftType,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordExists) {
			// Lost a clock-in race; the winner's record stands.
			existing, getErr := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
			if getErr != nil || existing == nil {
				return attendance.ClockInResult{}, attendance.ErrAlreadyCheckedIn
			}
			return attendance.ClockInResult{
				Record:       *existing,
				AlreadyIn:    true,
				ShiftType:    sched.ShiftType,
				ScheduledEnd: sched.EndTime,
			}, nil
		}
		return attendance.ClockInResult{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ClockInResult{
		Record:       created,
		Late:         status == attendance.StatusLate,
		LateMinutes:  lateMinutes,
		ShiftType:    sched.ShiftType,
		ScheduledEnd: sched.EndTime,
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string, now time.Time) (attendance.ClockOutResult, error) {
	nowLocal := now.In(a.loc)
	day := a.dayOf(now)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.ClockOutResult{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.ClockOutResult{NoRecordForToday: true}, nil
	}
	if record.CheckOut != nil {
		// A day is closed once checked out; re-opening is an
		// administrative action outside this flow.
		return attendance.ClockOutResult{Record: *record, AlreadyCheckedOut: true}, nil
	}

	earlyDeparture := false
	earlyBy := 0
	sched, err := a.HasScheduleToday(ctx, employeeID, day)
	if err != nil {
		return attendance.ClockOutResult{}, err
	}
	if sched.Scheduled && sched.EndTime != nil {
		scheduledEnd, err := timeOn(day, *sched.EndTime, a.loc)
		if err != nil {
			return attendance.ClockOutResult{}, err
		}
		remaining := scheduledEnd.Sub(nowLocal)
		if remaining > time.Duration(a.policy.EarlyDepartureMinutes)*time.Minute {
			earlyDeparture = true
			earlyBy = int(remaining.Minutes())
		}
	}

	record.CheckOut = &nowLocal
	if earlyDeparture && !attendance.HasEarlyDeparture(record.Status) {
		record.Status = record.Status + attendance.EarlyDepartureQualifier
	}

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.ClockOutResult{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ClockOutResult{
		Record:         *record,
		EarlyDeparture: earlyDeparture,
		EarlyByMinutes: earlyBy,
	}, nil
}

// ManualRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ManualRecord(ctx context.Context, req attendance.ManualRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, a.loc)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		BranchID:   req.BranchID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordExists) {
			return attendance.RecordResponse{}, attendance.ErrRecordExists
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create manual attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// TodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayStatus(ctx context.Context, employeeID string, now time.Time) (attendance.TodayStatusResponse, error) {
	day := a.dayOf(now)

	sched, err := a.HasScheduleToday(ctx, employeeID, day)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	resp := attendance.TodayStatusResponse{
		Scheduled: sched.Scheduled,
		ShiftType: sched.ShiftType,
		StartTime: sched.StartTime,
		EndTime:   sched.EndTime,
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record != nil {
		resp.CheckedIn = record.CheckIn != nil
		resp.CheckedOut = record.CheckOut != nil
		resp.Status = record.Status
		resp.CheckInTime = timePtrToString(record.CheckIn)
		resp.CheckOutTime = timePtrToString(record.CheckOut)
	}

	return resp, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

// mapRecordToResponse converts a Record entity to RecordResponse
func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var employeeName string
	if rec.EmployeeName != nil {
		employeeName = *rec.EmployeeName
	}

	return attendance.RecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: employeeName,
		BranchID:     rec.BranchID,
		Date:         rec.Date.Format("2006-01-02"),
		CheckInTime:  timePtrToString(rec.CheckIn),
		CheckOutTime: timePtrToString(rec.CheckOut),
		Status:       rec.Status,
		ShiftType:    rec.ShiftType,
		Notes:        rec.Notes,
	}
}
