package payroll

import "errors"

var (
	// ErrNoWorkingDays means the requested period is entirely rest days and
	// holidays, so there is no proration denominator.
	ErrNoWorkingDays = errors.New("no working days in period")
)
