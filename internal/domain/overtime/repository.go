package overtime

import (
	"context"
	"time"
)

type ListFilter struct {
	EmployeeID string
	Status     Status
	Date       *time.Time
}

// ApprovedTotals aggregates approved overtime for one employee and period.
type ApprovedTotals struct {
	EmployeeID string
	Count      int
	Minutes    int
	Total      int64
}

type OvertimeRepository interface {
	// Create inserts a new pending request with its computed rate and total
	Create(ctx context.Context, req OvertimeRequest) (OvertimeRequest, error)

	// GetByID retrieves one active request
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)

	// UpdateStatus flips the approval status; rejectionReason only for rejected
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	// SoftDelete marks a request inactive
	SoftDelete(ctx context.Context, id string) error

	// List retrieves active requests matching the filter
	List(ctx context.Context, filter ListFilter) ([]OvertimeRequest, error)

	// SumApproved totals approved overtime for one employee in [start, end]
	SumApproved(ctx context.Context, employeeID string, start, end time.Time) (ApprovedTotals, error)

	// SumApprovedAll totals approved overtime per employee in [start, end]
	SumApprovedAll(ctx context.Context, start, end time.Time) ([]ApprovedTotals, error)
}
