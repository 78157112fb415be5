package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/presensiku/payroll-backend-go/internal/domain/leave"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveColumns = `l.id, l.employee_id, l.type, l.start_date, l.end_date, l.reason,
	   l.deducts_quota, l.quota_deduction, l.status, l.rejection_reason,
	   l.is_active, l.created_at, l.updated_at`

func scanLeaveRequest(row pgx.Row, req *leave.LeaveRequest) error {
	return row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
		&req.DeductsQuota, &req.QuotaDeduction, &req.Status, &req.RejectionReason,
		&req.IsActive, &req.CreatedAt, &req.UpdatedAt,
	)
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date, reason,
			deducts_quota, quota_deduction, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Reason,
		req.DeductsQuota, req.QuotaDeduction, req.Status,
	).Scan(&req.ID, &req.IsActive, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, true)
}

func (r *leaveRequestRepository) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests l WHERE l.id = $1 AND l.is_active`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var req leave.LeaveRequest
	if err := scanLeaveRequest(q.QueryRow(ctx, query, id), &req); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, rejectionReason *string) error {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $1 AND is_active
	`

	tag, err := q.Exec(ctx, query, id, status, rejectionReason)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `, e.name
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.is_active
	`
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND l.employee_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}

	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Reason,
			&req.DeductsQuota, &req.QuotaDeduction, &req.Status, &req.RejectionReason,
			&req.IsActive, &req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UsedQuota implements leave.LeaveRequestRepository. Requests are attributed
// to the year their start date falls in.
func (r *leaveRequestRepository) UsedQuota(ctx context.Context, employeeID string, year int) (float64, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(quota_deduction), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM start_date) = $2
		  AND deducts_quota
		  AND status = 'approved'
		  AND is_active
	`

	var used float64
	if err := q.QueryRow(ctx, query, employeeID, year).Scan(&used); err != nil {
		return 0, fmt.Errorf("failed to sum used quota: %w", err)
	}

	return used, nil
}

// UsedQuotaAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UsedQuotaAll(ctx context.Context, year int) ([]leave.EmployeeQuotaUsage, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT e.id, e.name, COALESCE(SUM(l.quota_deduction), 0)
		FROM employees e
		LEFT JOIN leave_requests l
		  ON l.employee_id = e.id
		 AND EXTRACT(YEAR FROM l.start_date) = $1
		 AND l.deducts_quota
		 AND l.status = 'approved'
		 AND l.is_active
		WHERE e.is_active
		GROUP BY e.id, e.name
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list used quota: %w", err)
	}
	defer rows.Close()

	var usages []leave.EmployeeQuotaUsage
	for rows.Next() {
		var u leave.EmployeeQuotaUsage
		if err := rows.Scan(&u.EmployeeID, &u.EmployeeName, &u.Used); err != nil {
			return nil, fmt.Errorf("failed to scan quota usage: %w", err)
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}
