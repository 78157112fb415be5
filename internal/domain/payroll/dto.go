package payroll

// PeriodResult is the derived payroll projection for one employee and
// period. It is computed fresh on each request and never persisted.
type PeriodResult struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Category     string  `json:"category"`
	Bank         *string `json:"bank,omitempty"`
	AccountNo    *string `json:"account_number,omitempty"`

	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	OptimalWorkingDays int `json:"optimal_working_days"`
	PresentDays        int `json:"present_days"`
	LeaveDays          int `json:"leave_days"`
	SickDays           int `json:"sick_days"`
	FieldDutyDays      int `json:"field_duty_days"`
	AlphaDays          int `json:"alpha_days"`
	DaysPayable        int `json:"days_payable"`

	LateMinutes      int `json:"late_minutes"`
	ShortfallMinutes int `json:"shortfall_minutes"`
	WorkedMinutes    int `json:"worked_minutes"`

	DailyRate       int64 `json:"daily_rate"`
	GrossPay        int64 `json:"gross_pay"`
	Deduction       int64 `json:"deduction"`
	AttendanceBonus int64 `json:"attendance_bonus"`
	OvertimeCount   int   `json:"overtime_count"`
	OvertimeMinutes int   `json:"overtime_minutes"`
	OvertimeTotal   int64 `json:"overtime_total"`
	NetPay          int64 `json:"net_pay"`
}

// PeriodRecap is the company-wide projection for one period.
type PeriodRecap struct {
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	Results     []PeriodResult `json:"results"`
}

// DailyResult is the single-day pay preview for one employee.
type DailyResult struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Category     string `json:"category"`
	Date         string `json:"date"`

	ClockIn          *string `json:"clock_in"`
	ClockOut         *string `json:"clock_out"`
	LateMinutes      int     `json:"late_minutes"`
	ShortfallMinutes int     `json:"shortfall_minutes"`
	WorkedMinutes    int     `json:"worked_minutes"`

	DailyRate       int64  `json:"daily_rate"`
	Deduction       int64  `json:"deduction"`
	AttendanceBonus int64  `json:"attendance_bonus"`
	NetPay          *int64 `json:"net_pay"` // nil while still clocked in
}
