package overtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type fakeOvertimeRepo struct {
	requests map[string]overtime.OvertimeRequest
	nextID   int
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{requests: make(map[string]overtime.OvertimeRequest)}
}

func (f *fakeOvertimeRepo) Create(_ context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("ot-%d", f.nextID)
	req.IsActive = true
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeOvertimeRepo) GetByID(_ context.Context, id string) (overtime.OvertimeRequest, error) {
	req, ok := f.requests[id]
	if !ok || !req.IsActive {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
	}
	return req, nil
}

func (f *fakeOvertimeRepo) UpdateStatus(_ context.Context, id string, status overtime.Status, rejectionReason *string) error {
	req, ok := f.requests[id]
	if !ok {
		return overtime.ErrOvertimeNotFound
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	f.requests[id] = req
	return nil
}

func (f *fakeOvertimeRepo) SoftDelete(_ context.Context, id string) error {
	req, ok := f.requests[id]
	if !ok {
		return overtime.ErrOvertimeNotFound
	}
	req.IsActive = false
	f.requests[id] = req
	return nil
}

func (f *fakeOvertimeRepo) List(_ context.Context, filter overtime.ListFilter) ([]overtime.OvertimeRequest, error) {
	var out []overtime.OvertimeRequest
	for _, req := range f.requests {
		if !req.IsActive {
			continue
		}
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.Date != nil && !req.Date.Equal(*filter.Date) {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeOvertimeRepo) SumApproved(_ context.Context, employeeID string, start, end time.Time) (overtime.ApprovedTotals, error) {
	totals := overtime.ApprovedTotals{EmployeeID: employeeID}
	for _, req := range f.requests {
		if req.IsActive && req.EmployeeID == employeeID && req.Status == overtime.StatusApproved &&
			!req.Date.Before(start) && !req.Date.After(end) {
			totals.Count++
			totals.Minutes += req.Minutes
			totals.Total += req.TotalPayable
		}
	}
	return totals, nil
}

func (f *fakeOvertimeRepo) SumApprovedAll(_ context.Context, _, _ time.Time) ([]overtime.ApprovedTotals, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
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
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
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

func newTestService(holidays ...holiday.Holiday) (*OvertimeService, *fakeOvertimeRepo) {
	repo := newFakeOvertimeRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Name: "Budi", BaseSalary: 2_600_000, Category: employee.CategoryPermanent, IsActive: true},
		"emp-2": {ID: "emp-2", Name: "Sari", Category: employee.CategoryContract, IsActive: true},
	}}
	resolver := calendar.NewResolver(&fakeHolidayRepo{holidays: holidays})
	return NewOvertimeService(repo, empRepo, resolver), repo
}

func submitReq(employeeID, date, start, end string) overtime.SubmitOvertimeRequest {
	return overtime.SubmitOvertimeRequest{
		EmployeeID: employeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Note:       "month-end closing",
	}
}

func TestSubmitComputesRateAtSubmission(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// July 2025 has 27 working days minus 4 Sundays.
	resp, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "18:00", "21:00"))
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 180, resp.Minutes)
	// 2,600,000 over 27 working days, over 8 hours.
	assert.Equal(t, int64(12_037), resp.HourlyRate)
	// 3h x 12,037.03... x 1.25.
	assert.Equal(t, int64(45_139), resp.TotalPayable)
}

func TestSubmitHolidayScenario(t *testing.T) {
	svc, _ := newTestService(holiday.Holiday{
		ID:       "h1",
		Date:     time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		IsActive: true,
	})
	ctx := context.Background()

	// June 2025 has 30 days and 5 Sundays; the declared holiday leaves 24
	// working days in the proration.
	resp, err := svc.Submit(ctx, submitReq("emp-1", "2025-06-06", "09:00", "13:00"))
	require.NoError(t, err)

	// Daytime holiday window: 4h minus the break hour, doubled.
	assert.Equal(t, 180, resp.Minutes)
	assert.Equal(t, int64(13_542), resp.HourlyRate)
	assert.Equal(t, int64(81_250), resp.TotalPayable)
}

func TestSubmitZeroLengthWindow(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Equal clocks would otherwise wrap to a full 24-hour window.
	_, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "09:00", "09:00"))

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Empty(t, repo.requests)
}

func TestSubmitMissingSalary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Submit(ctx, submitReq("emp-2", "2025-07-01", "18:00", "21:00"))
	assert.ErrorIs(t, err, overtime.ErrMissingBaseSalary)
}

func TestApproveThenApproveAgain(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "18:00", "21:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, resp.ID))
	assert.ErrorIs(t, svc.Approve(ctx, resp.ID), overtime.ErrOvertimeAlreadyProcessed)
}

func TestRejectNeedsReason(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	resp, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "18:00", "21:00"))
	require.NoError(t, err)

	err = svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: resp.ID})
	assert.ErrorIs(t, err, overtime.ErrRejectionReasonNeeded)

	require.NoError(t, svc.Reject(ctx, overtime.RejectOvertimeRequest{ID: resp.ID, Reason: "not requested in advance"}))
}

func TestWithdrawOnlyPending(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	resp, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "18:00", "21:00"))
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, resp.ID))

	assert.ErrorIs(t, svc.Withdraw(ctx, resp.ID), overtime.ErrNotPending)

	second, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-02", "18:00", "20:00"))
	require.NoError(t, err)
	require.NoError(t, svc.Withdraw(ctx, second.ID))
	assert.False(t, repo.requests[second.ID].IsActive)
}

func TestApprovedTotalsFeedPayroll(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	first, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-01", "18:00", "21:00"))
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, first.ID))

	// A second request left pending must not count.
	second, err := svc.Submit(ctx, submitReq("emp-1", "2025-07-02", "18:00", "20:00"))
	require.NoError(t, err)
	assert.Equal(t, "pending", second.Status)

	totals, err := repo.SumApproved(ctx,
		"emp-1",
		time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, totals.Count)
	assert.Equal(t, first.Minutes, totals.Minutes)
	assert.Equal(t, first.TotalPayable, totals.Total)
}
