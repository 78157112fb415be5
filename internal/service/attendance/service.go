package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/presensiku/payroll-backend-go/internal/config"
	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/pkg/utils"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type AttendanceService struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	resolver *calendar.Resolver
	office   config.OfficeConfig
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	resolver *calendar.Resolver,
	office config.OfficeConfig,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		resolver:             resolver,
		office:               office,
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func formatLocation(lat, lon float64) string {
	return fmt.Sprintf("%.6f,%.6f", lat, lon)
}

func (s *AttendanceService) checkGeofence(lat, lon float64) error {
	distance := utils.CalculateHaversineDistance(lat, lon, s.office.Latitude, s.office.Longitude)
	if distance > s.office.RadiusMeters {
		return attendance.ErrOutsideAllowedRadius
	}
	return nil
}

// CheckIn records the start of a present day. Lateness is only accrued on
// working days.
func (s *AttendanceService) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeInactive
	}

	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := time.Now()
	if req.At != nil {
		at = *req.At
	}
	date := dateOf(at)

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	nonWorking, err := s.resolver.IsNonWorkingDay(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	location := formatLocation(req.Latitude, req.Longitude)
	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:      emp.ID,
		Date:            date,
		ClockIn:         &at,
		ClockInLocation: &location,
		LateMinutes:     LateMinutes(at, nonWorking),
		Status:          attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut completes the open present day. The conditional update in the
// repository guarantees at most one concurrent check-out wins.
func (s *AttendanceService) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkGeofence(req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := time.Now()
	if req.At != nil {
		at = *req.At
	}
	date := dateOf(at)

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || !record.Open() {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if MinuteOfDay(at) < MinuteOfDay(*record.ClockIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
	}

	nonWorking, err := s.resolver.IsNonWorkingDay(ctx, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	shortfall := ShortfallMinutes(&at, nonWorking)
	worked := WorkedMinutes(*record.ClockIn, &at)
	location := formatLocation(req.Latitude, req.Longitude)

	rows, err := s.AttendanceRepository.CompleteOpen(ctx, emp.ID, date, at, location, shortfall, worked)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if rows == 0 {
		// A concurrent check-out completed the record first.
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}

	updated, err := s.AttendanceRepository.GetByID(ctx, record.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// Summarize aggregates one employee's attendance facts over [start, end].
func (s *AttendanceService) Summarize(ctx context.Context, employeeID string, start, end time.Time) (attendance.PeriodSummary, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.PeriodSummary{}, err
	}

	span, err := s.resolver.Load(ctx, start, end)
	if err != nil {
		return attendance.PeriodSummary{}, err
	}

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return attendance.PeriodSummary{}, err
	}

	return summarize(employeeID, start, end, span, records), nil
}

// summarize is the pure aggregation over loaded rows.
func summarize(employeeID string, start, end time.Time, span calendar.Span, records []attendance.Attendance) attendance.PeriodSummary {
	summary := attendance.PeriodSummary{
		EmployeeID:         employeeID,
		Start:              start.Format("2006-01-02"),
		End:                end.Format("2006-01-02"),
		OptimalWorkingDays: span.WorkingDays(start, end),
	}

	recorded := make(map[string]struct{}, len(records))
	completedPresent := 0

	for _, rec := range records {
		recorded[rec.Date.Format("2006-01-02")] = struct{}{}

		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
			if rec.ClockOut != nil {
				completedPresent++
			}
		case attendance.StatusLeave:
			summary.LeaveDays++
		case attendance.StatusSick:
			summary.SickDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		case attendance.StatusFieldDuty:
			summary.FieldDutyDays++
		}

		if rec.LateMinutes != nil {
			summary.LateMinutes += *rec.LateMinutes
		}
		if rec.ShortfallMinutes != nil {
			summary.ShortfallMinutes += *rec.ShortfallMinutes
		}
		if rec.WorkedMinutes != nil {
			summary.WorkedMinutes += *rec.WorkedMinutes
		}
		if rec.ClockIn != nil && EarnsAttendanceBonus(*rec.ClockIn) {
			summary.EarlyArrivalDays++
		}
	}

	// One break per completed present day, period totals only.
	summary.WorkedMinutes -= completedPresent * DailyBreakMinutes
	if summary.WorkedMinutes < 0 {
		summary.WorkedMinutes = 0
	}

	// Absent: working days in range with no record at all.
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if span.IsNonWorkingDay(d) {
			continue
		}
		if _, ok := recorded[d.Format("2006-01-02")]; !ok {
			summary.AbsentDays++
		}
	}

	return summary
}

// Day returns the raw record for one employee-day, or nil when none exists.
func (s *AttendanceService) Day(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dateOf(date))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	resp := attendance.ToResponse(*record)
	return &resp, nil
}

// ListDay returns every employee's record for one date.
func (s *AttendanceService) ListDay(ctx context.Context, date time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, dateOf(date))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

// Edit is the administrative correction path: clock times are replaced and
// every derived figure is recomputed under the current holiday calendar.
func (s *AttendanceService) Edit(ctx context.Context, req attendance.EditRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	clockIn, err := combineClock(record.Date, req.ClockIn)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var clockOut *time.Time
	if req.ClockOut != nil {
		out, err := combineClock(record.Date, *req.ClockOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		if MinuteOfDay(out) < MinuteOfDay(clockIn) {
			return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeIn
		}
		clockOut = &out
	}

	nonWorking, err := s.resolver.IsNonWorkingDay(ctx, record.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.ClockIn = &clockIn
	record.ClockOut = clockOut
	record.LateMinutes = LateMinutes(clockIn, nonWorking)
	record.ShortfallMinutes = ShortfallMinutes(clockOut, nonWorking)
	if clockOut != nil {
		worked := WorkedMinutes(clockIn, clockOut)
		record.WorkedMinutes = &worked
	} else {
		record.WorkedMinutes = nil
	}

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// Remove soft-deletes a record.
func (s *AttendanceService) Remove(ctx context.Context, id string) error {
	return s.AttendanceRepository.SoftDelete(ctx, id)
}

func combineClock(date time.Time, clock string) (time.Time, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse clock time: %w", err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
