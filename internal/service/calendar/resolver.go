package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
)

// RestDay is the fixed weekly rest day.
const RestDay = time.Sunday

const dateLayout = "2006-01-02"

// Span is a loaded, immutable view of the holiday calendar over a date
// range. Calculators work against a Span so they stay pure and
// deterministic.
type Span struct {
	start    time.Time
	end      time.Time
	holidays map[string]struct{}
}

// NewSpan builds a Span for [start, end] from declared holidays. Holidays
// outside the range are ignored.
func NewSpan(start, end time.Time, holidays []holiday.Holiday) Span {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		if h.Date.Before(start) || h.Date.After(end) {
			continue
		}
		set[h.Date.Format(dateLayout)] = struct{}{}
	}
	return Span{start: start, end: end, holidays: set}
}

// IsNonWorkingDay reports whether date is the weekly rest day or a declared
// holiday.
func (s Span) IsNonWorkingDay(date time.Time) bool {
	if date.Weekday() == RestDay {
		return true
	}
	_, ok := s.holidays[date.Format(dateLayout)]
	return ok
}

// WorkingDays counts the days in [start, end] that are neither the weekly
// rest day nor a declared holiday. This is the "optimal working days"
// proration denominator.
func (s Span) WorkingDays(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !s.IsNonWorkingDay(d) {
			count++
		}
	}
	return count
}

// Resolver loads holiday calendar spans from the store.
type Resolver struct {
	holiday.HolidayRepository
}

func NewResolver(repo holiday.HolidayRepository) *Resolver {
	return &Resolver{HolidayRepository: repo}
}

// Load fetches the active holidays for [start, end] and returns them as a
// Span.
func (r *Resolver) Load(ctx context.Context, start, end time.Time) (Span, error) {
	holidays, err := r.HolidayRepository.ListRange(ctx, start, end)
	if err != nil {
		return Span{}, fmt.Errorf("failed to load holiday span: %w", err)
	}
	return NewSpan(start, end, holidays), nil
}

// IsNonWorkingDay resolves a single date without loading a span.
func (r *Resolver) IsNonWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	if date.Weekday() == RestDay {
		return true, nil
	}
	exists, err := r.HolidayRepository.ExistsOnDate(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}
	return exists, nil
}

// WorkingDaysInMonth counts working days in the calendar month containing
// date. Used as the overtime daily-rate divisor.
func (r *Resolver) WorkingDaysInMonth(ctx context.Context, date time.Time) (int, error) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1)

	span, err := r.Load(ctx, first, last)
	if err != nil {
		return 0, err
	}
	return span.WorkingDays(first, last), nil
}
