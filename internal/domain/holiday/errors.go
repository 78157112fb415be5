package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("holiday already declared for this date")
)
