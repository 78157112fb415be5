package overtime

import (
	"context"
	"fmt"
	"time"

	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type OvertimeService struct {
	overtime.OvertimeRepository
	employee.EmployeeRepository
	resolver *calendar.Resolver
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	resolver *calendar.Resolver,
) *OvertimeService {
	return &OvertimeService{
		OvertimeRepository: overtimeRepo,
		EmployeeRepository: employeeRepo,
		resolver:           resolver,
	}
}

// Submit records a pending overtime request with its rate and payable
// amount already computed. Approval later does not recompute them, so a
// salary change after submission does not move the payout.
func (s *OvertimeService) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	if !emp.IsActive {
		return overtime.OvertimeResponse{}, employee.ErrEmployeeInactive
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	nonWorking, err := s.resolver.IsNonWorkingDay(ctx, date)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}
	workingDays, err := s.resolver.WorkingDaysInMonth(ctx, date)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	comp, err := Compute(emp.BaseSalary, workingDays, req.StartTime, req.EndTime, emp.FieldDuty, nonWorking)
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	created, err := s.OvertimeRepository.Create(ctx, overtime.OvertimeRequest{
		EmployeeID:   emp.ID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Note:         req.Note,
		HourlyRate:   comp.HourlyRate,
		TotalPayable: comp.TotalPayable,
		Minutes:      comp.Minutes,
		Status:       overtime.StatusPending,
	})
	if err != nil {
		return overtime.OvertimeResponse{}, err
	}

	return overtime.ToResponse(created), nil
}

func (s *OvertimeService) Approve(ctx context.Context, id string) error {
	req, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != overtime.StatusPending {
		return overtime.ErrOvertimeAlreadyProcessed
	}
	return s.OvertimeRepository.UpdateStatus(ctx, id, overtime.StatusApproved, nil)
}

func (s *OvertimeService) Reject(ctx context.Context, req overtime.RejectOvertimeRequest) error {
	if validator.IsEmpty(req.Reason) {
		return overtime.ErrRejectionReasonNeeded
	}

	existing, err := s.OvertimeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if existing.Status != overtime.StatusPending {
		return overtime.ErrOvertimeAlreadyProcessed
	}
	return s.OvertimeRepository.UpdateStatus(ctx, req.ID, overtime.StatusRejected, &req.Reason)
}

// Withdraw lets the requester take back a request the admin has not
// processed yet.
func (s *OvertimeService) Withdraw(ctx context.Context, id string) error {
	req, err := s.OvertimeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.Status != overtime.StatusPending {
		return overtime.ErrNotPending
	}
	return s.OvertimeRepository.SoftDelete(ctx, id)
}

func (s *OvertimeService) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.OvertimeResponse, error) {
	requests, err := s.OvertimeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, overtime.ToResponse(req))
	}
	return responses, nil
}
