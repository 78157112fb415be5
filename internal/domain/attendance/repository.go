package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance rows. All reads
// are restricted to active (not soft-deleted) rows unless stated otherwise.
type AttendanceRepository interface {
	// Create inserts a new attendance row
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves one row by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the active row for one employee-day,
	// or nil when none exists. Used to block duplicate check-ins.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// CompleteOpen sets check-out fields on the single open (clock_out IS
	// NULL) row for the employee and date. Returns the number of rows
	// updated; 0 means there was no open check-in, or a concurrent
	// check-out already completed it.
	CompleteOpen(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, location string, shortfallMinutes *int, workedMinutes int) (int64, error)

	// Update rewrites clock times and derived minutes on an existing row
	Update(ctx context.Context, att Attendance) error

	// SoftDelete marks a row inactive
	SoftDelete(ctx context.Context, id string) error

	// ListByEmployeeAndRange retrieves active rows for [start, end] inclusive
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// ListByDate retrieves all employees' active rows for one date
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
