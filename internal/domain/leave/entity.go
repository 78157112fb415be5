package leave

import "time"

// Type of leave. Ordinary leave may deduct the annual quota; sick leave
// never does.
type Type string

const (
	TypeLeave Type = "leave"
	TypeSick  Type = "sick"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// AnnualQuota is the fixed number of quota-deducting leave days per
// calendar year.
const AnnualQuota = 12.0

// LeaveRequest covers [StartDate, EndDate] inclusive. Approval materializes
// one attendance row per covered date; the request and those rows are kept
// in sync by that transition, not by a foreign key.
type LeaveRequest struct {
	ID              string
	EmployeeID      string
	Type            Type
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	DeductsQuota    bool
	QuotaDeduction  float64 // days consumed when approved; 0.5 for a half-day
	Status          Status
	RejectionReason *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}

// CoveredDates returns every calendar date in [StartDate, EndDate].
func (l LeaveRequest) CoveredDates() []time.Time {
	var dates []time.Time
	for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
