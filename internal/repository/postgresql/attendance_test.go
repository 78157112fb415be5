package postgresql

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
)

func TestMapAttendanceCreateError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "attendances_employee_id_date_key"}
	assert.ErrorIs(t, mapAttendanceCreateError(uniqueViolation), attendance.ErrAlreadyCheckedIn)

	other := errors.New("connection reset")
	err := mapAttendanceCreateError(other)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.ErrorIs(t, err, other)
}
