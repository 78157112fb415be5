package employee

import (
	"context"

	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
)

type EmployeeService struct {
	employee.EmployeeRepository
}

func NewEmployeeService(repo employee.EmployeeRepository) *EmployeeService {
	return &EmployeeService{EmployeeRepository: repo}
}

func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Code:          req.Code,
		Name:          req.Name,
		BaseSalary:    req.BaseSalary,
		Category:      employee.Category(req.Category),
		FieldDuty:     req.FieldDuty,
		Bank:          req.Bank,
		AccountNumber: req.AccountNumber,
		IsActive:      true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeService) List(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Deactivate disables an employee without touching historical attendance,
// leave, or overtime rows.
func (s *EmployeeService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.Deactivate(ctx, id)
}
