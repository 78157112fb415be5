package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensiku/payroll-backend-go/internal/config"
	attdomain "github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type fakeAttendanceRepo struct {
	records map[string]attdomain.Attendance // keyed by employeeID|date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attdomain.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attdomain.Attendance) (attdomain.Attendance, error) {
	f.nextID++
	att.ID = time.Now().Format("20060102") + "-" + string(rune('a'+f.nextID))
	att.IsActive = true
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attdomain.Attendance, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attdomain.Attendance{}, attdomain.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attdomain.Attendance, error) {
	rec, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) CompleteOpen(_ context.Context, employeeID string, date time.Time, clockOut time.Time, location string, shortfallMinutes *int, workedMinutes int) (int64, error) {
	key := recordKey(employeeID, date)
	rec, ok := f.records[key]
	if !ok || !rec.Open() {
		return 0, nil
	}
	rec.ClockOut = &clockOut
	rec.ClockOutLocation = &location
	rec.ShortfallMinutes = shortfallMinutes
	rec.WorkedMinutes = &workedMinutes
	f.records[key] = rec
	return 1, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attdomain.Attendance) error {
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return nil
}

func (f *fakeAttendanceRepo) SoftDelete(_ context.Context, id string) error {
	for key, rec := range f.records {
		if rec.ID == id {
			delete(f.records, key)
			return nil
		}
	}
	return attdomain.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time) ([]attdomain.Attendance, error) {
	var out []attdomain.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attdomain.Attendance, error) {
	var out []attdomain.Attendance
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, id string) error {
	emp := f.employees[id]
	emp.IsActive = false
	f.employees[id] = emp
	return nil
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) ListRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ExistsOnDate(_ context.Context, date time.Time) (bool, error) {
	for _, h := range f.holidays {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHolidayRepo) SoftDelete(_ context.Context, _ string) error { return nil }

var testOffice = config.OfficeConfig{Latitude: -6.2, Longitude: 106.8, RadiusMeters: 100}

func newTestService(holidays ...holiday.Holiday) (*AttendanceService, *fakeAttendanceRepo) {
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "E001", Name: "Budi", BaseSalary: 2_600_000, Category: employee.CategoryPermanent, IsActive: true},
		"emp-2": {ID: "emp-2", Code: "E002", Name: "Sari", BaseSalary: 150_000, Category: employee.CategoryContract, IsActive: false},
	}}
	resolver := calendar.NewResolver(&fakeHolidayRepo{holidays: holidays})
	return NewAttendanceService(attRepo, empRepo, resolver, testOffice), attRepo
}

func at(day, hour, minute int) time.Time {
	// June 2025; the 1st is a Sunday.
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestCheckInLateness(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	moment := at(2, 8, 30)
	resp, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1",
		Latitude:   testOffice.Latitude,
		Longitude:  testOffice.Longitude,
		At:         &moment,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 30, *resp.LateMinutes)
	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2025-06-02", resp.Date)
}

func TestCheckInDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	moment := at(2, 7, 50)
	req := attdomain.CheckInRequest{
		EmployeeID: "emp-1",
		Latitude:   testOffice.Latitude,
		Longitude:  testOffice.Longitude,
		At:         &moment,
	}
	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	later := at(2, 9, 0)
	req.At = &later
	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attdomain.ErrAlreadyCheckedIn)
}

func TestCheckInGeofence(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	moment := at(2, 8, 0)
	_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1",
		Latitude:   testOffice.Latitude + 0.05, // several km away
		Longitude:  testOffice.Longitude,
		At:         &moment,
	})
	assert.ErrorIs(t, err, attdomain.ErrOutsideAllowedRadius)
}

func TestCheckInInactiveEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	moment := at(2, 8, 0)
	_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-2",
		Latitude:   testOffice.Latitude,
		Longitude:  testOffice.Longitude,
		At:         &moment,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestCheckInOnSundayAccruesNoLateness(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	moment := at(1, 10, 0) // Sunday
	resp, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1",
		Latitude:   testOffice.Latitude,
		Longitude:  testOffice.Longitude,
		At:         &moment,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.LateMinutes)
}

func TestCheckOutCompletesDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := at(2, 8, 0)
	_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
	})
	require.NoError(t, err)

	out := at(2, 16, 0)
	resp, err := svc.CheckOut(ctx, attdomain.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ShortfallMinutes)
	assert.Equal(t, 60, *resp.ShortfallMinutes)
	require.NotNil(t, resp.WorkedMinutes)
	assert.Equal(t, 480, *resp.WorkedMinutes)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	out := at(2, 17, 0)
	_, err := svc.CheckOut(ctx, attdomain.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
	})
	assert.ErrorIs(t, err, attdomain.ErrNotCheckedIn)
}

func TestCheckOutTwice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := at(2, 8, 0)
	_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
	})
	require.NoError(t, err)

	out := at(2, 17, 0)
	req := attdomain.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
	}
	_, err = svc.CheckOut(ctx, req)
	require.NoError(t, err)

	later := at(2, 18, 0)
	req.At = &later
	_, err = svc.CheckOut(ctx, req)
	assert.ErrorIs(t, err, attdomain.ErrNotCheckedIn)
}

func TestCheckOutBeforeCheckIn(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := at(2, 9, 0)
	_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
	})
	require.NoError(t, err)

	out := at(2, 8, 30)
	_, err = svc.CheckOut(ctx, attdomain.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
	})
	assert.ErrorIs(t, err, attdomain.ErrCheckOutBeforeIn)
}

func TestSummarizePeriod(t *testing.T) {
	svc, attRepo := newTestService()
	ctx := context.Background()

	// Three present days, one of them early enough for the bonus.
	days := []struct {
		day           int
		inHour, inMin int
		outHour       int
	}{
		{2, 7, 40, 17}, // early arrival, full day
		{3, 8, 30, 17}, // 30 min late
		{4, 8, 0, 16},  // 60 min shortfall
	}
	for _, d := range days {
		in := at(d.day, d.inHour, d.inMin)
		_, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
			EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
		})
		require.NoError(t, err)

		out := at(d.day, d.outHour, 0)
		_, err = svc.CheckOut(ctx, attdomain.CheckOutRequest{
			EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
		})
		require.NoError(t, err)
	}

	// A leave day materialized by approval, no clock times.
	_, err := attRepo.Create(ctx, attdomain.Attendance{
		EmployeeID: "emp-1",
		Date:       at(5, 0, 0),
		Status:     attdomain.StatusLeave,
	})
	require.NoError(t, err)

	summary, err := svc.Summarize(ctx, "emp-1", at(1, 0, 0), at(7, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 6, summary.OptimalWorkingDays) // Mon-Sat, Sunday the 1st excluded
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.Equal(t, 2, summary.AbsentDays) // Fri 6 and Sat 7
	assert.Equal(t, 30, summary.LateMinutes)
	assert.Equal(t, 60, summary.ShortfallMinutes)
	assert.Equal(t, 1, summary.EarlyArrivalDays)

	// 560 + 510 + 480 worked, minus a 60 min break per completed day.
	assert.Equal(t, 560+510+480-3*60, summary.WorkedMinutes)
}

func TestSummarizeHolidayNotCountedAbsent(t *testing.T) {
	svc, _ := newTestService(holiday.Holiday{
		ID: "h1", Date: at(4, 0, 0), Description: "Idul Adha", IsActive: true,
	})
	ctx := context.Background()

	summary, err := svc.Summarize(ctx, "emp-1", at(1, 0, 0), at(7, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, 5, summary.OptimalWorkingDays)
	assert.Equal(t, 5, summary.AbsentDays)
}

func TestEditRecomputesDerivedFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := at(2, 9, 0)
	created, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
	})
	require.NoError(t, err)

	out := "18:00"
	edited, err := svc.Edit(ctx, attdomain.EditRequest{
		ID:       created.ID,
		ClockIn:  "07:30",
		ClockOut: &out,
	})
	require.NoError(t, err)

	assert.Nil(t, edited.LateMinutes)
	assert.Nil(t, edited.ShortfallMinutes)
	require.NotNil(t, edited.WorkedMinutes)
	assert.Equal(t, 630, *edited.WorkedMinutes)
}

func TestEditClearingClockOutReopensDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	in := at(2, 8, 0)
	created, err := svc.CheckIn(ctx, attdomain.CheckInRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &in,
	})
	require.NoError(t, err)

	out := at(2, 17, 0)
	_, err = svc.CheckOut(ctx, attdomain.CheckOutRequest{
		EmployeeID: "emp-1", Latitude: testOffice.Latitude, Longitude: testOffice.Longitude, At: &out,
	})
	require.NoError(t, err)

	edited, err := svc.Edit(ctx, attdomain.EditRequest{ID: created.ID, ClockIn: "08:15"})
	require.NoError(t, err)

	assert.Nil(t, edited.ClockOut)
	assert.Nil(t, edited.WorkedMinutes)
	require.NotNil(t, edited.LateMinutes)
	assert.Equal(t, 15, *edited.LateMinutes)
}
