package holiday

import "time"

// Holiday is a declared non-working date in addition to the weekly rest day.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
