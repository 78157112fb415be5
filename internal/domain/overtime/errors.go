package overtime

import "errors"

var (
	ErrOvertimeNotFound         = errors.New("overtime request not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime request has already been approved or rejected")
	ErrMissingBaseSalary        = errors.New("employee has no base salary on file")
	ErrNoWorkingDaysInMonth     = errors.New("no working days in the requested month")
	ErrRejectionReasonNeeded    = errors.New("rejection reason is required")
	ErrNotPending               = errors.New("only pending overtime requests can be withdrawn")
)
