package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/presensiku/payroll-backend-go/internal/domain/employee"
	"github.com/presensiku/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, code, name, base_salary, category, field_duty,
	   bank, account_number, is_active, created_at, updated_at`

func scanEmployee(row pgx.Row, emp *employee.Employee) error {
	return row.Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.BaseSalary, &emp.Category, &emp.FieldDuty,
		&emp.Bank, &emp.AccountNumber, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		INSERT INTO employees (code, name, base_salary, category, field_duty, bank, account_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_active, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Code, emp.Name, emp.BaseSalary, emp.Category, emp.FieldDuty, emp.Bank, emp.AccountNumber,
	).Scan(&emp.ID, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	var emp employee.Employee
	if err := scanEmployee(q.QueryRow(ctx, query, id), &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := database.QuerierFrom(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.BaseSalary != nil {
		appendSet("base_salary", *req.BaseSalary)
	}
	if req.Category != nil {
		appendSet("category", *req.Category)
	}
	if req.FieldDuty != nil {
		appendSet("field_duty", *req.FieldDuty)
	}
	if req.Bank != nil {
		appendSet("bank", *req.Bank)
	}
	if req.AccountNumber != nil {
		appendSet("account_number", *req.AccountNumber)
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $1", strings.Join(sets, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := database.QuerierFrom(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
