package overtime

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
)

const (
	// WorkdayHours converts a daily rate into the hourly overtime base.
	WorkdayHours = 8

	// On non-working days an overtime window that falls entirely inside
	// regular office hours loses one break hour and is capped at a full
	// workday.
	officeBandStartMinute = 7 * 60
	officeBandEndMinute   = 17 * 60
	officeBandBreak       = 60
	officeBandCapMinutes  = 8 * 60
)

var (
	two            = decimal.NewFromInt(2)
	oneQuarter     = decimal.RequireFromString("1.25")
	minutesPerHour = decimal.NewFromInt(60)
)

// ClockToMinutes converts an HH:MM string to minutes since midnight.
// "24:00" is accepted as 1440 so a window may end exactly at midnight.
func ClockToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// multiplier selects the pay factor for the employee's duty type and the
// kind of day the overtime falls on.
func multiplier(fieldDuty, nonWorkingDay bool) decimal.Decimal {
	if nonWorkingDay {
		return two
	}
	if fieldDuty {
		return decimal.NewFromInt(1)
	}
	return oneQuarter
}

// Compute derives the payable amount for one overtime window. The hourly
// rate is the monthly salary prorated over the month's working days and an
// eight hour day; it is stored before the multiplier is applied.
func Compute(baseSalary int64, workingDaysInMonth int, startTime, endTime string, fieldDuty, nonWorkingDay bool) (overtime.Computation, error) {
	if baseSalary <= 0 {
		return overtime.Computation{}, overtime.ErrMissingBaseSalary
	}
	if workingDaysInMonth <= 0 {
		return overtime.Computation{}, overtime.ErrNoWorkingDaysInMonth
	}

	startMin := ClockToMinutes(startTime)
	endMin := ClockToMinutes(endTime)
	if endMin <= startMin {
		// Window wraps past midnight.
		endMin += 24 * 60
	}
	minutes := endMin - startMin

	if nonWorkingDay && startMin >= officeBandStartMinute && endMin <= officeBandEndMinute {
		minutes -= officeBandBreak
		if minutes > officeBandCapMinutes {
			minutes = officeBandCapMinutes
		}
		if minutes < 0 {
			minutes = 0
		}
	}

	dailyRate := decimal.NewFromInt(baseSalary).Div(decimal.NewFromInt(int64(workingDaysInMonth)))
	hourlyRate := dailyRate.Div(decimal.NewFromInt(WorkdayHours))

	total := hourlyRate.
		Mul(decimal.NewFromInt(int64(minutes))).
		Div(minutesPerHour).
		Mul(multiplier(fieldDuty, nonWorkingDay))

	return overtime.Computation{
		HourlyRate:   hourlyRate.Round(0).IntPart(),
		TotalPayable: total.Round(0).IntPart(),
		Minutes:      minutes,
	}, nil
}
