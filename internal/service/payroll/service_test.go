package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string) error { return nil }

type fakeOvertimeRepo struct {
	totals map[string]overtime.ApprovedTotals
}

func (f *fakeOvertimeRepo) Create(_ context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(_ context.Context, _ string) (overtime.OvertimeRequest, error) {
	return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
}

func (f *fakeOvertimeRepo) UpdateStatus(_ context.Context, _ string, _ overtime.Status, _ *string) error {
	return nil
}

func (f *fakeOvertimeRepo) SoftDelete(_ context.Context, _ string) error { return nil }

func (f *fakeOvertimeRepo) List(_ context.Context, _ overtime.ListFilter) ([]overtime.OvertimeRequest, error) {
	return nil, nil
}

func (f *fakeOvertimeRepo) SumApproved(_ context.Context, employeeID string, _, _ time.Time) (overtime.ApprovedTotals, error) {
	return f.totals[employeeID], nil
}

func (f *fakeOvertimeRepo) SumApprovedAll(_ context.Context, _, _ time.Time) ([]overtime.ApprovedTotals, error) {
	var out []overtime.ApprovedTotals
	for _, t := range f.totals {
		out = append(out, t)
	}
	return out, nil
}

type fakeAttendanceReader struct {
	summaries map[string]attendance.PeriodSummary
	days      map[string]*attendance.AttendanceResponse
}

func (f *fakeAttendanceReader) Summarize(_ context.Context, employeeID string, _, _ time.Time) (attendance.PeriodSummary, error) {
	return f.summaries[employeeID], nil
}

func (f *fakeAttendanceReader) Day(_ context.Context, employeeID string, _ time.Time) (*attendance.AttendanceResponse, error) {
	return f.days[employeeID], nil
}

type fakeHolidayRepo struct{}

func (fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (fakeHolidayRepo) ListRange(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return nil, nil
}

func (fakeHolidayRepo) ExistsOnDate(_ context.Context, _ time.Time) (bool, error) {
	return false, nil
}

func (fakeHolidayRepo) SoftDelete(_ context.Context, _ string) error { return nil }

var (
	periodStart = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
)

func newTestService(reader *fakeAttendanceReader, totals map[string]overtime.ApprovedTotals) *PayrollService {
	bank := "BCA"
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", Code: "E001", Name: "Budi", BaseSalary: 2_600_000, Category: employee.CategoryPermanent, Bank: &bank, IsActive: true},
		{ID: "emp-2", Code: "E002", Name: "Sari", BaseSalary: 150_000, Category: employee.CategoryContract, IsActive: true},
	}}
	resolver := calendar.NewResolver(fakeHolidayRepo{})
	return NewPayrollService(empRepo, &fakeOvertimeRepo{totals: totals}, reader, resolver)
}

func TestEmployeePeriod(t *testing.T) {
	reader := &fakeAttendanceReader{summaries: map[string]attendance.PeriodSummary{
		"emp-1": {
			EmployeeID:         "emp-1",
			OptimalWorkingDays: 26,
			PresentDays:        24,
			LeaveDays:          1,
			SickDays:           1,
			LateMinutes:        30,
			ShortfallMinutes:   60,
			WorkedMinutes:      24 * 420,
			EarlyArrivalDays:   2,
		},
	}}
	svc := newTestService(reader, map[string]overtime.ApprovedTotals{
		"emp-1": {EmployeeID: "emp-1", Count: 1, Minutes: 180, Total: 46_875},
	})

	result, err := svc.EmployeePeriod(context.Background(), "emp-1", periodStart, periodEnd)
	require.NoError(t, err)

	assert.Equal(t, "E001", result.EmployeeCode)
	assert.Equal(t, 26, result.DaysPayable)
	assert.Equal(t, int64(100_000), result.DailyRate)
	assert.Equal(t, int64(2_600_000), result.GrossPay)
	assert.Equal(t, int64(18_750), result.Deduction)
	assert.Equal(t, int64(20_000), result.AttendanceBonus)
	assert.Equal(t, int64(46_875), result.OvertimeTotal)
	assert.Equal(t, int64(2_600_000-18_750+20_000+46_875), result.NetPay)
}

func TestEmployeePeriodUnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeAttendanceReader{}, nil)

	_, err := svc.EmployeePeriod(context.Background(), "emp-9", periodStart, periodEnd)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestPeriodRecap(t *testing.T) {
	reader := &fakeAttendanceReader{summaries: map[string]attendance.PeriodSummary{
		"emp-1": {
			EmployeeID:         "emp-1",
			OptimalWorkingDays: 26,
			PresentDays:        26,
			WorkedMinutes:      26 * 420,
		},
		"emp-2": {
			EmployeeID:         "emp-2",
			OptimalWorkingDays: 26,
			PresentDays:        20,
			WorkedMinutes:      20 * 420,
		},
	}}
	svc := newTestService(reader, map[string]overtime.ApprovedTotals{
		"emp-2": {EmployeeID: "emp-2", Count: 1, Minutes: 120, Total: 25_000},
	})

	recap, err := svc.PeriodRecap(context.Background(), periodStart, periodEnd)
	require.NoError(t, err)
	require.Len(t, recap.Results, 2)

	byID := make(map[string]int64, len(recap.Results))
	for _, res := range recap.Results {
		byID[res.EmployeeID] = res.NetPay
	}
	assert.Equal(t, int64(2_600_000), byID["emp-1"])
	// Contract: 20 days at 150,000 plus approved overtime.
	assert.Equal(t, int64(20*150_000+25_000), byID["emp-2"])
}

func TestDailyPayCompletedDay(t *testing.T) {
	in, out := "07:40", "17:00"
	late, short, worked := 0, 0, 560
	reader := &fakeAttendanceReader{days: map[string]*attendance.AttendanceResponse{
		"emp-2": {
			EmployeeID:       "emp-2",
			ClockIn:          &in,
			ClockOut:         &out,
			LateMinutes:      &late,
			ShortfallMinutes: &short,
			WorkedMinutes:    &worked,
			Status:           "present",
		},
	}}
	svc := newTestService(reader, nil)

	result, err := svc.DailyPay(context.Background(), "emp-2", periodStart.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(150_000), result.DailyRate)
	require.NotNil(t, result.NetPay)
	// Early arrival bonus on top of the full daily rate.
	assert.Equal(t, int64(160_000), *result.NetPay)
}

func TestDailyPayOpenDayWithholdsNet(t *testing.T) {
	in := "08:00"
	late := 0
	reader := &fakeAttendanceReader{days: map[string]*attendance.AttendanceResponse{
		"emp-2": {
			EmployeeID:  "emp-2",
			ClockIn:     &in,
			LateMinutes: &late,
			Status:      "present",
		},
	}}
	svc := newTestService(reader, nil)

	result, err := svc.DailyPay(context.Background(), "emp-2", periodStart.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Nil(t, result.NetPay)
}

func TestDailyPayLeaveDayWithholdsNet(t *testing.T) {
	reader := &fakeAttendanceReader{days: map[string]*attendance.AttendanceResponse{
		"emp-2": {
			EmployeeID: "emp-2",
			Status:     "leave",
		},
	}}
	svc := newTestService(reader, nil)

	result, err := svc.DailyPay(context.Background(), "emp-2", periodStart.AddDate(0, 0, 1))
	require.NoError(t, err)

	// A clockless leave row must not pay a full contract day.
	assert.Nil(t, result.NetPay)
	assert.Equal(t, int64(150_000), result.DailyRate)
}

func TestDailyPayAbsent(t *testing.T) {
	svc := newTestService(&fakeAttendanceReader{}, nil)

	result, err := svc.DailyPay(context.Background(), "emp-2", periodStart.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.NotNil(t, result.NetPay)
	assert.Equal(t, int64(0), *result.NetPay)
}
