package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create declares a new holiday
	Create(ctx context.Context, h Holiday) (Holiday, error)

	// ListRange retrieves active holidays with date in [start, end] inclusive
	ListRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// ExistsOnDate reports whether an active holiday is declared for date
	ExistsOnDate(ctx context.Context, date time.Time) (bool, error)

	// SoftDelete marks a holiday inactive
	SoftDelete(ctx context.Context, id string) error
}
