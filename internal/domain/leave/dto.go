package leave

import (
	"time"

	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID     string   `json:"employee_id"`
	Type           string   `json:"type"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Reason         string   `json:"reason"`
	DeductsQuota   bool     `json:"deducts_quota"`
	QuotaDeduction *float64 `json:"quota_deduction,omitempty"` // per covered day, defaults to 1
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Type != string(TypeLeave) && r.Type != string(TypeSick) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be leave or sick"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
	}
	if validator.IsValidDate(r.StartDate) && validator.IsValidDate(r.EndDate) {
		start, _ := time.Parse("2006-01-02", r.StartDate)
		end, _ := time.Parse("2006-01-02", r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not precede start_date"})
		}
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if r.Type == string(TypeSick) && r.DeductsQuota {
		errs = append(errs, validator.ValidationError{Field: "deducts_quota", Message: "sick leave never deducts quota"})
	}
	if r.QuotaDeduction != nil && (*r.QuotaDeduction <= 0 || *r.QuotaDeduction > 1) {
		errs = append(errs, validator.ValidationError{Field: "quota_deduction", Message: "quota_deduction must be in (0, 1]"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectLeaveRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Reason          string  `json:"reason"`
	DeductsQuota    bool    `json:"deducts_quota"`
	QuotaDeduction  float64 `json:"quota_deduction"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func ToResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		Type:            string(l.Type),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		Reason:          l.Reason,
		DeductsQuota:    l.DeductsQuota,
		QuotaDeduction:  l.QuotaDeduction,
		Status:          string(l.Status),
		RejectionReason: l.RejectionReason,
	}
}

// QuotaResponse is the annual leave balance for one employee and year.
type QuotaResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Year         int     `json:"year"`
	Quota        float64 `json:"quota"`
	Used         float64 `json:"used"`
	Remaining    float64 `json:"remaining"`
}
