package employee

import "time"

// Category distinguishes how base salary is interpreted: a permanent
// employee's salary is monthly and prorated over the working days of the
// period, a contract employee's salary is already a daily rate.
type Category string

const (
	CategoryPermanent Category = "permanent"
	CategoryContract  Category = "contract"
)

type Employee struct {
	ID            string
	Code          string
	Name          string
	BaseSalary    int64 // smallest currency unit
	Category      Category
	FieldDuty     bool // field/operations staff, affects overtime multipliers
	Bank          *string
	AccountNumber *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
