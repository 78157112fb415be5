package leave

import (
	"context"
)

// ListFilter narrows List results; zero values mean no filter.
type ListFilter struct {
	EmployeeID string
	Status     Status
}

// EmployeeQuotaUsage is one row of the company-wide quota listing.
type EmployeeQuotaUsage struct {
	EmployeeID   string
	EmployeeName string
	Used         float64
}

type LeaveRequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves one active request
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate retrieves one active request with a row lock, so the
	// approve/reject transition is serialized per request
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus flips the approval status; rejectionReason only for rejected
	UpdateStatus(ctx context.Context, id string, status Status, rejectionReason *string) error

	// List retrieves active requests matching the filter
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	// UsedQuota sums quota deductions of approved, quota-deducting requests
	// whose start date falls in year
	UsedQuota(ctx context.Context, employeeID string, year int) (float64, error)

	// UsedQuotaAll is UsedQuota across every active employee
	UsedQuotaAll(ctx context.Context, year int) ([]EmployeeQuotaUsage, error)
}
