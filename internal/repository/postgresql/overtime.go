package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `o.id, o.employee_id, o.date, o.start_time, o.end_time, o.note,
	   o.hourly_rate, o.total_payable, o.minutes, o.status, o.rejection_reason,
	   o.is_active, o.created_at, o.updated_at`

func scanOvertime(row pgx.Row, req *overtime.OvertimeRequest) error {
	return row.Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Note,
		&req.HourlyRate, &req.TotalPayable, &req.Minutes, &req.Status, &req.RejectionReason,
		&req.IsActive, &req.CreatedAt, &req.UpdatedAt,
	)
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (
			employee_id, date, start_time, end_time, note,
			hourly_rate, total_payable, minutes, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Date, req.StartTime, req.EndTime, req.Note,
		req.HourlyRate, req.TotalPayable, req.Minutes, req.Status,
	).Scan(&req.ID, &req.IsActive, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + overtimeColumns + ` FROM overtime_requests o WHERE o.id = $1 AND o.is_active`

	var req overtime.OvertimeRequest
	if err := scanOvertime(q.QueryRow(ctx, query, id), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
		}
		return overtime.OvertimeRequest{}, fmt.Errorf("failed to get overtime request by ID: %w", err)
	}

	return req, nil
}

// UpdateStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, id string, status overtime.Status, rejectionReason *string) error {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		UPDATE overtime_requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1 AND is_active
	`

	tag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update overtime status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// SoftDelete implements overtime.OvertimeRepository.
func (r *overtimeRepository) SoftDelete(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE overtime_requests SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// List implements overtime.OvertimeRepository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.ListFilter) ([]overtime.OvertimeRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + overtimeColumns + `, e.name
		FROM overtime_requests o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.is_active
	`
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND o.employee_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND o.status = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND o.date = $%d", len(args))
	}

	query += " ORDER BY o.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OvertimeRequest
	for rows.Next() {
		var req overtime.OvertimeRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.StartTime, &req.EndTime, &req.Note,
			&req.HourlyRate, &req.TotalPayable, &req.Minutes, &req.Status, &req.RejectionReason,
			&req.IsActive, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// SumApproved implements overtime.OvertimeRepository.
func (r *overtimeRepository) SumApproved(ctx context.Context, employeeID string, start, end time.Time) (overtime.ApprovedTotals, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(SUM(minutes), 0), COALESCE(SUM(total_payable), 0)
		FROM overtime_requests
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status = 'approved'
		  AND is_active
	`

	totals := overtime.ApprovedTotals{EmployeeID: employeeID}
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&totals.Count, &totals.Minutes, &totals.Total); err != nil {
		return overtime.ApprovedTotals{}, fmt.Errorf("failed to sum approved overtime: %w", err)
	}

	return totals, nil
}

// SumApprovedAll implements overtime.OvertimeRepository.
func (r *overtimeRepository) SumApprovedAll(ctx context.Context, start, end time.Time) ([]overtime.ApprovedTotals, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT employee_id, COUNT(*), COALESCE(SUM(minutes), 0), COALESCE(SUM(total_payable), 0)
		FROM overtime_requests
		WHERE date BETWEEN $1 AND $2
		  AND status = 'approved'
		  AND is_active
		GROUP BY employee_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to sum approved overtime: %w", err)
	}
	defer rows.Close()

	var totals []overtime.ApprovedTotals
	for rows.Next() {
		var t overtime.ApprovedTotals
		if err := rows.Scan(&t.EmployeeID, &t.Count, &t.Minutes, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan overtime totals: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
