package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/payroll"
)

const (
	// AttendanceBonusPerDay rewards arriving before the early cutoff.
	AttendanceBonusPerDay = 10_000

	workdayMinutes = 8 * 60
)

// Inputs are the attendance and overtime facts one payroll projection is
// derived from. PresentDays includes half days; the shortfall minutes on
// those days carry the missing hours into the deduction.
type Inputs struct {
	Category           employee.Category
	BaseSalary         int64
	OptimalWorkingDays int

	PresentDays   int
	LeaveDays     int
	SickDays      int
	FieldDutyDays int

	LateMinutes      int
	ShortfallMinutes int
	WorkedMinutes    int
	EarlyArrivalDays int

	OvertimeCount   int
	OvertimeMinutes int
	OvertimeTotal   int64
}

// Result is the money side of the projection.
type Result struct {
	DaysPayable     int
	AlphaDays       int
	DailyRate       int64
	GrossPay        int64
	Deduction       int64
	AttendanceBonus int64
	NetPay          int64
}

// ComputePeriod turns attendance facts into pay. A permanent salary is
// prorated over the period's working days and leave and sick days stay
// paid; a contract salary is already daily and only present days pay.
func ComputePeriod(in Inputs) (Result, error) {
	if in.OptimalWorkingDays <= 0 {
		return Result{}, payroll.ErrNoWorkingDays
	}

	var dailyRate decimal.Decimal
	var daysPayable int
	switch in.Category {
	case employee.CategoryContract:
		dailyRate = decimal.NewFromInt(in.BaseSalary)
		daysPayable = in.PresentDays
	default:
		dailyRate = decimal.NewFromInt(in.BaseSalary).Div(decimal.NewFromInt(int64(in.OptimalWorkingDays)))
		daysPayable = in.PresentDays + in.LeaveDays + in.SickDays
		if daysPayable > in.OptimalWorkingDays {
			daysPayable = in.OptimalWorkingDays
		}
	}

	alpha := in.OptimalWorkingDays - (in.PresentDays + in.LeaveDays + in.SickDays + in.FieldDutyDays)
	if alpha < 0 {
		alpha = 0
	}

	result := Result{
		DaysPayable: daysPayable,
		AlphaDays:   alpha,
		DailyRate:   dailyRate.Round(0).IntPart(),
	}

	// No time worked and no approved overtime means nothing to pay.
	if in.WorkedMinutes == 0 && in.OvertimeTotal == 0 {
		return result, nil
	}

	gross := dailyRate.Mul(decimal.NewFromInt(int64(daysPayable)))

	perMinute := dailyRate.Div(decimal.NewFromInt(workdayMinutes))
	deduction := perMinute.Mul(decimal.NewFromInt(int64(in.LateMinutes + in.ShortfallMinutes)))

	base := gross.Sub(deduction)
	if base.IsNegative() {
		base = decimal.Zero
	}

	bonus := int64(in.EarlyArrivalDays) * AttendanceBonusPerDay

	result.GrossPay = gross.Round(0).IntPart()
	result.Deduction = deduction.Round(0).IntPart()
	result.AttendanceBonus = bonus
	result.NetPay = base.Round(0).IntPart() + bonus + in.OvertimeTotal

	return result, nil
}
