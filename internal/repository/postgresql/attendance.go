package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
	   a.clock_in_location, a.clock_out_location,
	   a.late_minutes, a.shortfall_minutes, a.worked_minutes,
	   a.status, a.is_active, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.ClockInLocation, &att.ClockOutLocation,
		&att.LateMinutes, &att.ShortfallMinutes, &att.WorkedMinutes,
		&att.Status, &att.IsActive, &att.CreatedAt, &att.UpdatedAt,
	)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (
			id, employee_id, date, clock_in, clock_out,
			clock_in_location, clock_out_location,
			late_minutes, shortfall_minutes, worked_minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.ClockIn, att.ClockOut,
		att.ClockInLocation, att.ClockOutLocation,
		att.LateMinutes, att.ShortfallMinutes, att.WorkedMinutes, att.Status,
	).Scan(&att.IsActive, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, mapAttendanceCreateError(err)
	}

	return att, nil
}

// mapAttendanceCreateError turns a unique violation on (employee_id, date)
// into the duplicate check-in conflict so concurrent inserts cannot both win.
func mapAttendanceCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendance.ErrAlreadyCheckedIn
	}
	return fmt.Errorf("failed to create attendance: %w", err)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1 AND a.is_active`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, id), &att); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2 AND a.is_active
		LIMIT 1
	`

	var att attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), &att); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// CompleteOpen implements attendance.AttendanceRepository. The conditional
// clock_out IS NULL predicate serializes concurrent check-outs: at most one
// update wins, the rest see zero rows affected.
func (r *attendanceRepository) CompleteOpen(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, location string, shortfallMinutes *int, workedMinutes int) (int64, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $3,
		    clock_out_location = $4,
		    shortfall_minutes = $5,
		    worked_minutes = $6,
		    updated_at = NOW()
		WHERE employee_id = $1
		  AND date = $2
		  AND clock_out IS NULL
		  AND clock_in IS NOT NULL
		  AND is_active
	`

	tag, err := q.Exec(ctx, query, employeeID, date, clockOut, location, shortfallMinutes, workedMinutes)
	if err != nil {
		return 0, fmt.Errorf("failed to complete open attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $2,
		    clock_out = $3,
		    late_minutes = $4,
		    shortfall_minutes = $5,
		    worked_minutes = $6,
		    status = $7,
		    updated_at = NOW()
		WHERE id = $1 AND is_active
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.ClockIn, att.ClockOut,
		att.LateMinutes, att.ShortfallMinutes, att.WorkedMinutes, att.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// SoftDelete implements attendance.AttendanceRepository.
func (r *attendanceRepository) SoftDelete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE attendances SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		  AND a.is_active
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1 AND a.is_active
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
			&att.ClockInLocation, &att.ClockOutLocation,
			&att.LateMinutes, &att.ShortfallMinutes, &att.WorkedMinutes,
			&att.Status, &att.IsActive, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
