package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/domain/payroll"
	attendancesvc "github.com/presensiku/payroll-backend-go/internal/service/attendance"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

// AttendanceReader is the slice of the attendance service payroll needs.
type AttendanceReader interface {
	Summarize(ctx context.Context, employeeID string, start, end time.Time) (attendance.PeriodSummary, error)
	Day(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceResponse, error)
}

type PayrollService struct {
	employee.EmployeeRepository
	overtime.OvertimeRepository
	attendance AttendanceReader
	resolver   *calendar.Resolver
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	overtimeRepo overtime.OvertimeRepository,
	attendanceReader AttendanceReader,
	resolver *calendar.Resolver,
) *PayrollService {
	return &PayrollService{
		EmployeeRepository: employeeRepo,
		OvertimeRepository: overtimeRepo,
		attendance:         attendanceReader,
		resolver:           resolver,
	}
}

func inputsFrom(emp employee.Employee, summary attendance.PeriodSummary, totals overtime.ApprovedTotals) Inputs {
	return Inputs{
		Category:           emp.Category,
		BaseSalary:         emp.BaseSalary,
		OptimalWorkingDays: summary.OptimalWorkingDays,
		PresentDays:        summary.PresentDays + summary.HalfDays,
		LeaveDays:          summary.LeaveDays,
		SickDays:           summary.SickDays,
		FieldDutyDays:      summary.FieldDutyDays,
		LateMinutes:        summary.LateMinutes,
		ShortfallMinutes:   summary.ShortfallMinutes,
		WorkedMinutes:      summary.WorkedMinutes,
		EarlyArrivalDays:   summary.EarlyArrivalDays,
		OvertimeCount:      totals.Count,
		OvertimeMinutes:    totals.Minutes,
		OvertimeTotal:      totals.Total,
	}
}

func periodResult(emp employee.Employee, start, end time.Time, in Inputs, res Result) payroll.PeriodResult {
	return payroll.PeriodResult{
		EmployeeID:   emp.ID,
		EmployeeCode: emp.Code,
		EmployeeName: emp.Name,
		Category:     string(emp.Category),
		Bank:         emp.Bank,
		AccountNo:    emp.AccountNumber,

		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),

		OptimalWorkingDays: in.OptimalWorkingDays,
		PresentDays:        in.PresentDays,
		LeaveDays:          in.LeaveDays,
		SickDays:           in.SickDays,
		FieldDutyDays:      in.FieldDutyDays,
		AlphaDays:          res.AlphaDays,
		DaysPayable:        res.DaysPayable,

		LateMinutes:      in.LateMinutes,
		ShortfallMinutes: in.ShortfallMinutes,
		WorkedMinutes:    in.WorkedMinutes,

		DailyRate:       res.DailyRate,
		GrossPay:        res.GrossPay,
		Deduction:       res.Deduction,
		AttendanceBonus: res.AttendanceBonus,
		OvertimeCount:   in.OvertimeCount,
		OvertimeMinutes: in.OvertimeMinutes,
		OvertimeTotal:   in.OvertimeTotal,
		NetPay:          res.NetPay,
	}
}

// EmployeePeriod computes one employee's payroll projection for [start, end].
func (s *PayrollService) EmployeePeriod(ctx context.Context, employeeID string, start, end time.Time) (payroll.PeriodResult, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PeriodResult{}, err
	}

	summary, err := s.attendance.Summarize(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PeriodResult{}, err
	}

	totals, err := s.OvertimeRepository.SumApproved(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PeriodResult{}, err
	}

	in := inputsFrom(emp, summary, totals)
	res, err := ComputePeriod(in)
	if err != nil {
		return payroll.PeriodResult{}, err
	}

	return periodResult(emp, start, end, in, res), nil
}

// PeriodRecap computes the projection for every active employee. Approved
// overtime is fetched once for the whole period instead of per employee.
func (s *PayrollService) PeriodRecap(ctx context.Context, start, end time.Time) (payroll.PeriodRecap, error) {
	employees, err := s.EmployeeRepository.List(ctx, true)
	if err != nil {
		return payroll.PeriodRecap{}, err
	}

	allTotals, err := s.OvertimeRepository.SumApprovedAll(ctx, start, end)
	if err != nil {
		return payroll.PeriodRecap{}, err
	}
	totalsByEmployee := make(map[string]overtime.ApprovedTotals, len(allTotals))
	for _, t := range allTotals {
		totalsByEmployee[t.EmployeeID] = t
	}

	recap := payroll.PeriodRecap{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		Results:     make([]payroll.PeriodResult, 0, len(employees)),
	}

	for _, emp := range employees {
		summary, err := s.attendance.Summarize(ctx, emp.ID, start, end)
		if err != nil {
			return payroll.PeriodRecap{}, err
		}

		in := inputsFrom(emp, summary, totalsByEmployee[emp.ID])
		res, err := ComputePeriod(in)
		if err != nil {
			return payroll.PeriodRecap{}, err
		}

		recap.Results = append(recap.Results, periodResult(emp, start, end, in, res))
	}

	return recap, nil
}

// DailyPay previews one employee-day. The net figure is only set once the
// day holds a completed clock pair; open days and clockless leave or sick
// rows keep it withheld.
func (s *PayrollService) DailyPay(ctx context.Context, employeeID string, date time.Time) (payroll.DailyResult, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.DailyResult{}, err
	}

	var dailyRate decimal.Decimal
	if emp.Category == employee.CategoryContract {
		dailyRate = decimal.NewFromInt(emp.BaseSalary)
	} else {
		workingDays, err := s.resolver.WorkingDaysInMonth(ctx, date)
		if err != nil {
			return payroll.DailyResult{}, err
		}
		if workingDays == 0 {
			return payroll.DailyResult{}, payroll.ErrNoWorkingDays
		}
		dailyRate = decimal.NewFromInt(emp.BaseSalary).Div(decimal.NewFromInt(int64(workingDays)))
	}

	result := payroll.DailyResult{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Category:     string(emp.Category),
		Date:         date.Format("2006-01-02"),
		DailyRate:    dailyRate.Round(0).IntPart(),
	}

	day, err := s.attendance.Day(ctx, employeeID, date)
	if err != nil {
		return payroll.DailyResult{}, err
	}
	if day == nil {
		// Absent: nothing earned.
		zero := int64(0)
		result.NetPay = &zero
		return result, nil
	}

	result.ClockIn = day.ClockIn
	result.ClockOut = day.ClockOut
	if day.LateMinutes != nil {
		result.LateMinutes = *day.LateMinutes
	}
	if day.ShortfallMinutes != nil {
		result.ShortfallMinutes = *day.ShortfallMinutes
	}
	if day.WorkedMinutes != nil {
		result.WorkedMinutes = *day.WorkedMinutes
	}

	if day.ClockIn == nil || day.ClockOut == nil {
		// Still clocked in, or a clockless leave or sick row. Net stays
		// unset until a completed in/out pair exists.
		return result, nil
	}

	perMinute := dailyRate.Div(decimal.NewFromInt(workdayMinutes))
	deduction := perMinute.Mul(decimal.NewFromInt(int64(result.LateMinutes + result.ShortfallMinutes)))
	result.Deduction = deduction.Round(0).IntPart()

	if day.ClockIn != nil {
		if in, parseErr := time.Parse("15:04", *day.ClockIn); parseErr == nil {
			clockIn := time.Date(date.Year(), date.Month(), date.Day(), in.Hour(), in.Minute(), 0, 0, date.Location())
			if attendancesvc.EarnsAttendanceBonus(clockIn) {
				result.AttendanceBonus = AttendanceBonusPerDay
			}
		}
	}

	net := dailyRate.Sub(deduction)
	if net.IsNegative() {
		net = decimal.Zero
	}
	netPay := net.Round(0).IntPart() + result.AttendanceBonus
	result.NetPay = &netPay

	return result, nil
}
