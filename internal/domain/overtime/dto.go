package overtime

import (
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Note       string `json:"note"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if !validator.IsValidClock(r.StartTime) || r.StartTime == "24:00" {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be a valid HH:MM time"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be a valid HH:MM time"})
	} else if r.EndTime == r.StartTime {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must differ from start_time"})
	}
	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "note is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectOvertimeRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

// Computation is the rate result returned at submission time.
type Computation struct {
	HourlyRate   int64 `json:"hourly_rate"`
	TotalPayable int64 `json:"total_payable"`
	Minutes      int   `json:"minutes"`
}

type OvertimeResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Note            string  `json:"note"`
	HourlyRate      int64   `json:"hourly_rate"`
	TotalPayable    int64   `json:"total_payable"`
	Minutes         int     `json:"minutes"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func ToResponse(o OvertimeRequest) OvertimeResponse {
	return OvertimeResponse{
		ID:              o.ID,
		EmployeeID:      o.EmployeeID,
		EmployeeName:    o.EmployeeName,
		Date:            o.Date.Format("2006-01-02"),
		StartTime:       o.StartTime,
		EndTime:         o.EndTime,
		Note:            o.Note,
		HourlyRate:      o.HourlyRate,
		TotalPayable:    o.TotalPayable,
		Minutes:         o.Minutes,
		Status:          string(o.Status),
		RejectionReason: o.RejectionReason,
	}
}
