package employee

import (
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	BaseSalary    int64   `json:"base_salary"`
	Category      string  `json:"category"`
	FieldDuty     bool    `json:"field_duty"`
	Bank          *string `json:"bank,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.BaseSalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be positive"})
	}
	if r.Category != string(CategoryPermanent) && r.Category != string(CategoryContract) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be permanent or contract"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	Name          *string `json:"name,omitempty"`
	BaseSalary    *int64  `json:"base_salary,omitempty"`
	Category      *string `json:"category,omitempty"`
	FieldDuty     *bool   `json:"field_duty,omitempty"`
	Bank          *string `json:"bank,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.BaseSalary != nil && *r.BaseSalary <= 0 {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "base_salary must be positive"})
	}
	if r.Category != nil && *r.Category != string(CategoryPermanent) && *r.Category != string(CategoryContract) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be permanent or contract"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	BaseSalary    int64   `json:"base_salary"`
	Category      string  `json:"category"`
	FieldDuty     bool    `json:"field_duty"`
	Bank          *string `json:"bank,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	IsActive      bool    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Code:          e.Code,
		Name:          e.Name,
		BaseSalary:    e.BaseSalary,
		Category:      string(e.Category),
		FieldDuty:     e.FieldDuty,
		Bank:          e.Bank,
		AccountNumber: e.AccountNumber,
		IsActive:      e.IsActive,
	}
}
