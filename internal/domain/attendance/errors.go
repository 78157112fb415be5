package attendance

import "errors"

var (
	// Check-in / check-out errors
	ErrAlreadyCheckedIn     = errors.New("already checked in for this date")
	ErrNotCheckedIn         = errors.New("no open check-in found for this date")
	ErrOutsideAllowedRadius = errors.New("location is outside the allowed radius")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrCheckOutBeforeIn   = errors.New("check-out must not precede check-in")
)
