package attendance

import "time"

// Status is the per-day attendance status code.
type Status string

const (
	StatusPresent   Status = "present"
	StatusLeave     Status = "leave"
	StatusSick      Status = "sick"
	StatusHalfDay   Status = "half_day"
	StatusFieldDuty Status = "field_duty"
)

// Attendance is one employee-day. Rows with StatusPresent are created by
// check-in and completed by check-out; leave and sick rows are materialized
// by leave approval and carry no clock times.
type Attendance struct {
	ID               string
	EmployeeID       string
	Date             time.Time
	ClockIn          *time.Time
	ClockOut         *time.Time
	ClockInLocation  *string
	ClockOutLocation *string
	LateMinutes      *int
	ShortfallMinutes *int
	WorkedMinutes    *int
	Status           Status
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// Open reports whether the record is a present-day row still waiting for
// check-out.
func (a Attendance) Open() bool {
	return a.Status == StatusPresent && a.ClockIn != nil && a.ClockOut == nil
}
