package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/leave"
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

// TxRunner runs a function inside one database transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type LeaveService struct {
	tx TxRunner
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewLeaveService(
	tx TxRunner,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) *LeaveService {
	return &LeaveService{
		tx:                     tx,
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
	}
}

// Submit records a pending leave request. The quota deduction is fixed at
// submission: the per-day weight times the number of covered dates.
func (s *LeaveService) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !emp.IsActive {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeInactive
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	request := leave.LeaveRequest{
		EmployeeID: emp.ID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	for _, date := range request.CoveredDates() {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		if existing != nil {
			return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
		}
	}

	if request.Type == leave.TypeLeave && req.DeductsQuota {
		perDay := 1.0
		if req.QuotaDeduction != nil {
			perDay = *req.QuotaDeduction
		}
		request.DeductsQuota = true
		request.QuotaDeduction = perDay * float64(len(request.CoveredDates()))
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// Approve flips a pending request to approved and materializes one
// attendance row per covered date. The whole transition runs in one
// transaction under a row lock, so two admins cannot double-approve and the
// quota check cannot race with another approval for the same employee.
func (s *LeaveService) Approve(ctx context.Context, id string) error {
	return s.tx.InTx(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		if request.DeductsQuota {
			used, err := s.LeaveRequestRepository.UsedQuota(ctx, request.EmployeeID, request.StartDate.Year())
			if err != nil {
				return err
			}
			if used+request.QuotaDeduction > leave.AnnualQuota {
				return leave.ErrQuotaExceeded
			}
		}

		if err := s.LeaveRequestRepository.UpdateStatus(ctx, id, leave.StatusApproved, nil); err != nil {
			return err
		}

		status := attendance.StatusLeave
		if request.Type == leave.TypeSick {
			status = attendance.StatusSick
		}
		for _, date := range request.CoveredDates() {
			existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, request.EmployeeID, date)
			if err != nil {
				return err
			}
			if existing != nil {
				return leave.ErrOverlappingLeave
			}
			if _, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
				EmployeeID: request.EmployeeID,
				Date:       date,
				Status:     status,
			}); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *LeaveService) Reject(ctx context.Context, req leave.RejectLeaveRequest) error {
	if validator.IsEmpty(req.Reason) {
		return leave.ErrRejectionReasonNeeded
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}
	return s.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.StatusRejected, &req.Reason)
}

func (s *LeaveService) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// RemainingQuota reports one employee's annual leave balance. Usage is
// attributed to the year the leave starts in.
func (s *LeaveService) RemainingQuota(ctx context.Context, employeeID string, year int) (leave.QuotaResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.QuotaResponse{}, err
	}

	used, err := s.LeaveRequestRepository.UsedQuota(ctx, employeeID, year)
	if err != nil {
		return leave.QuotaResponse{}, err
	}

	remaining := leave.AnnualQuota - used
	if remaining < 0 {
		remaining = 0
	}

	return leave.QuotaResponse{
		EmployeeID:   emp.ID,
		EmployeeName: &emp.Name,
		Year:         year,
		Quota:        leave.AnnualQuota,
		Used:         used,
		Remaining:    remaining,
	}, nil
}

// QuotaAll reports the balance of every active employee for one year.
func (s *LeaveService) QuotaAll(ctx context.Context, year int) ([]leave.QuotaResponse, error) {
	usages, err := s.LeaveRequestRepository.UsedQuotaAll(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.QuotaResponse, 0, len(usages))
	for _, usage := range usages {
		remaining := leave.AnnualQuota - usage.Used
		if remaining < 0 {
			remaining = 0
		}
		name := usage.EmployeeName
		responses = append(responses, leave.QuotaResponse{
			EmployeeID:   usage.EmployeeID,
			EmployeeName: &name,
			Year:         year,
			Quota:        leave.AnnualQuota,
			Used:         usage.Used,
			Remaining:    remaining,
		})
	}
	return responses, nil
}
