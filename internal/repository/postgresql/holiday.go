package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO holidays (date, description)
		VALUES ($1, $2)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Date, h.Description).
		Scan(&h.ID, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.Holiday{}, holiday.ErrHolidayExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT id, date, description, is_active, created_at, updated_at
		FROM holidays
		WHERE is_active AND date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Description, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// ExistsOnDate implements holiday.HolidayRepository.
func (r *holidayRepository) ExistsOnDate(ctx context.Context, date time.Time) (bool, error) {
	q := database.QuerierFrom(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM holidays WHERE is_active AND date = $1)`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return exists, nil
}

// SoftDelete implements holiday.HolidayRepository.
func (r *holidayRepository) SoftDelete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE holidays SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
