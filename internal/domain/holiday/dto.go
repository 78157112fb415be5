package holiday

import (
	"github.com/presensiku/payroll-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Description: h.Description,
	}
}
