package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID, including inactive ones
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees, optionally restricted to active ones
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	// Update applies a partial update
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Deactivate soft-disables an employee; historical records are kept
	Deactivate(ctx context.Context, id string) error
}
