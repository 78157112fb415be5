package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/presensiku/payroll-backend-go/internal/handler/http/response"
	payrollsvc "github.com/presensiku/payroll-backend-go/internal/service/payroll"
)

type PayrollHandler struct {
	service *payrollsvc.PayrollService
}

func NewPayrollHandler(service *payrollsvc.PayrollService) *PayrollHandler {
	return &PayrollHandler{service: service}
}

func (h *PayrollHandler) Recap(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, "start and end must be YYYY-MM-DD", nil)
		return
	}

	recap, err := h.service.PeriodRecap(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recap)
}

func (h *PayrollHandler) EmployeePeriod(w http.ResponseWriter, r *http.Request) {
	h.period(w, r, chi.URLParam(r, "employeeID"))
}

func (h *PayrollHandler) MyPeriod(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	h.period(w, r, employeeID)
}

func (h *PayrollHandler) period(w http.ResponseWriter, r *http.Request, employeeID string) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, "start and end must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.service.EmployeePeriod(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *PayrollHandler) DailyPay(w http.ResponseWriter, r *http.Request) {
	h.daily(w, r, chi.URLParam(r, "employeeID"))
}

func (h *PayrollHandler) MyDailyPay(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	h.daily(w, r, employeeID)
}

func (h *PayrollHandler) daily(w http.ResponseWriter, r *http.Request, employeeID string) {
	date, err := parseDateQuery(r, "date")
	if err != nil {
		date = time.Now()
	}

	result, err := h.service.DailyPay(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
