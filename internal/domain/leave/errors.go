package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrQuotaExceeded         = errors.New("annual leave quota exceeded")
	ErrRejectionReasonNeeded = errors.New("rejection reason is required")
	ErrOverlappingLeave      = errors.New("an attendance record already exists in the requested range")
)
