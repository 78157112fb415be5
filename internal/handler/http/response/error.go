package response

import (
	"errors"
	"net/http"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/domain/leave"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/domain/payroll"
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		UnprocessableEntity(w, "Employee is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in to complete")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		UnprocessableEntity(w, "Location is outside the allowed office radius")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		UnprocessableEntity(w, "Check-out must not precede check-in")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday is already declared on that date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An attendance record already exists in the requested range")
	case errors.Is(err, leave.ErrQuotaExceeded):
		UnprocessableEntity(w, "Annual leave quota exceeded")
	case errors.Is(err, leave.ErrRejectionReasonNeeded):
		UnprocessableEntity(w, "Rejection reason is required")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime request already processed")
	case errors.Is(err, overtime.ErrNotPending):
		Conflict(w, "Only pending overtime requests can be withdrawn")
	case errors.Is(err, overtime.ErrMissingBaseSalary):
		UnprocessableEntity(w, "Employee has no base salary on file")
	case errors.Is(err, overtime.ErrNoWorkingDaysInMonth):
		UnprocessableEntity(w, "No working days in the requested month")
	case errors.Is(err, overtime.ErrRejectionReasonNeeded):
		UnprocessableEntity(w, "Rejection reason is required")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoWorkingDays):
		UnprocessableEntity(w, "No working days in the requested period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
