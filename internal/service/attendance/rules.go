package attendance

import "time"

// Work-time rule constants. The historical rule set had several divergent
// copies of these values; they are centralized here so a variant is a
// configuration change, not a new code path.
const (
	// WorkStartMinute is the lateness cutoff (08:00) in minutes of day.
	WorkStartMinute = 8 * 60
	// WorkEndMinute is the shortfall cutoff (17:00) in minutes of day.
	WorkEndMinute = 17 * 60
	// BonusCutoffMinute is the early-arrival bonus cutoff (07:46). A
	// check-in strictly before it earns the attendance bonus.
	BonusCutoffMinute = 7*60 + 46
	// DailyBreakMinutes is deducted per completed present day when totaling
	// a period's worked minutes.
	DailyBreakMinutes = 60
	// WorkdayMinutes is the nominal paid workday (8 hours).
	WorkdayMinutes = 8 * 60
)

// MinuteOfDay returns the wall-clock minute of day, seconds truncated.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// LateMinutes returns minutes past the 08:00 cutoff, or nil when the date
// is non-working or the check-in is on time.
func LateMinutes(clockIn time.Time, nonWorkingDay bool) *int {
	if nonWorkingDay {
		return nil
	}
	m := MinuteOfDay(clockIn)
	if m <= WorkStartMinute {
		return nil
	}
	late := m - WorkStartMinute
	return &late
}

// ShortfallMinutes returns minutes before the 17:00 cutoff, or nil when the
// date is non-working, the employee is still clocked in, or the check-out
// is at or past the cutoff.
func ShortfallMinutes(clockOut *time.Time, nonWorkingDay bool) *int {
	if clockOut == nil || nonWorkingDay {
		return nil
	}
	m := MinuteOfDay(*clockOut)
	if m >= WorkEndMinute {
		return nil
	}
	short := WorkEndMinute - m
	return &short
}

// WorkedMinutes returns check-out minus check-in in time-of-day minutes,
// floored at 0 to guard against clock skew and bad manual entries. A day
// still in progress contributes 0.
func WorkedMinutes(clockIn time.Time, clockOut *time.Time) int {
	if clockOut == nil {
		return 0
	}
	worked := MinuteOfDay(*clockOut) - MinuteOfDay(clockIn)
	if worked < 0 {
		return 0
	}
	return worked
}

// EarnsAttendanceBonus reports whether a check-in qualifies for the
// early-arrival bonus.
func EarnsAttendanceBonus(clockIn time.Time) bool {
	return MinuteOfDay(clockIn) < BonusCutoffMinute
}
