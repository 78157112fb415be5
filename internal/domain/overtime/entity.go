package overtime

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// OvertimeRequest is one overtime window. Rate and total are computed once
// at submission and are not recomputed on approval. Times are local
// wall-clock HH:MM strings; "24:00" means midnight of the next day.
type OvertimeRequest struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	StartTime       string
	EndTime         string
	Note            string
	HourlyRate      int64 // smallest currency unit, before multiplier
	TotalPayable    int64
	Minutes         int
	Status          Status
	RejectionReason *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
