package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/presensiku/payroll-backend-go/internal/domain/overtime"
	"github.com/presensiku/payroll-backend-go/internal/handler/http/response"
	overtimesvc "github.com/presensiku/payroll-backend-go/internal/service/overtime"
)

type OvertimeHandler struct {
	service *overtimesvc.OvertimeService
}

func NewOvertimeHandler(service *overtimesvc.OvertimeService) *OvertimeHandler {
	return &OvertimeHandler{service: service}
}

func (h *OvertimeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req overtime.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	req.EmployeeID = employeeID

	result, err := h.service.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", result)
}

func (h *OvertimeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := overtime.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     overtime.Status(r.URL.Query().Get("status")),
	}
	if date, err := parseDateQuery(r, "date"); err == nil {
		filter.Date = &date
	}

	requests, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *OvertimeHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var date *time.Time
	if parsed, parseErr := parseDateQuery(r, "date"); parseErr == nil {
		date = &parsed
	}

	requests, err := h.service.List(r.Context(), overtime.ListFilter{EmployeeID: employeeID, Date: date})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *OvertimeHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", nil)
}

func (h *OvertimeHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req overtime.RejectOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.service.Reject(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", nil)
}

func (h *OvertimeHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Withdraw(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request withdrawn", nil)
}
