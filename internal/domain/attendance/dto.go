package attendance

import (
	"time"

	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	// At is the local wall-clock moment of the event. Filled by the handler
	// from the server clock; exposed for administrative backfill.
	At *time.Time `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	At *time.Time `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EditRequest is the administrative correction path. Clock times are local
// wall-clock in HH:MM form; clearing clock_out reopens the day.
type EditRequest struct {
	ID       string  `json:"-"`
	ClockIn  string  `json:"clock_in"`
	ClockOut *string `json:"clock_out,omitempty"`
}

func (r *EditRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsValidClock(r.ClockIn) || r.ClockIn == "24:00" {
		errs = append(errs, validator.ValidationError{Field: "clock_in", Message: "clock_in must be a valid HH:MM time"})
	}
	if r.ClockOut != nil && (!validator.IsValidClock(*r.ClockOut) || *r.ClockOut == "24:00") {
		errs = append(errs, validator.ValidationError{Field: "clock_out", Message: "clock_out must be a valid HH:MM time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	ClockIn          *string `json:"clock_in"`
	ClockOut         *string `json:"clock_out"`
	ClockInLocation  *string `json:"clock_in_location,omitempty"`
	ClockOutLocation *string `json:"clock_out_location,omitempty"`
	LateMinutes      *int    `json:"late_minutes"`
	ShortfallMinutes *int    `json:"shortfall_minutes"`
	WorkedMinutes    *int    `json:"worked_minutes"`
	Status           string  `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		EmployeeName:     a.EmployeeName,
		Date:             a.Date.Format("2006-01-02"),
		ClockIn:          clockString(a.ClockIn),
		ClockOut:         clockString(a.ClockOut),
		ClockInLocation:  a.ClockInLocation,
		ClockOutLocation: a.ClockOutLocation,
		LateMinutes:      a.LateMinutes,
		ShortfallMinutes: a.ShortfallMinutes,
		WorkedMinutes:    a.WorkedMinutes,
		Status:           string(a.Status),
	}
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

// PeriodSummary aggregates one employee's attendance facts over a date
// range. Worked minutes have the daily break already deducted per completed
// present day.
type PeriodSummary struct {
	EmployeeID         string `json:"employee_id"`
	Start              string `json:"period_start"`
	End                string `json:"period_end"`
	OptimalWorkingDays int    `json:"optimal_working_days"`
	PresentDays        int    `json:"present_days"`
	LeaveDays          int    `json:"leave_days"`
	SickDays           int    `json:"sick_days"`
	HalfDays           int    `json:"half_days"`
	FieldDutyDays      int    `json:"field_duty_days"`
	AbsentDays         int    `json:"absent_days"`
	LateMinutes        int    `json:"late_minutes"`
	ShortfallMinutes   int    `json:"shortfall_minutes"`
	WorkedMinutes      int    `json:"worked_minutes"`
	EarlyArrivalDays   int    `json:"early_arrival_days"`
}
