package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presensiku/payroll-backend-go/internal/domain/leave"
	"github.com/presensiku/payroll-backend-go/internal/handler/http/response"
	leavesvc "github.com/presensiku/payroll-backend-go/internal/service/leave"
)

type LeaveHandler struct {
	service *leavesvc.LeaveService
}

func NewLeaveHandler(service *leavesvc.LeaveService) *LeaveHandler {
	return &LeaveHandler{service: service}
}

func (h *LeaveHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
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

	response.Created(w, "Leave request submitted", result)
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.ListFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Status:     leave.Status(r.URL.Query().Get("status")),
	}

	requests, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	requests, err := h.service.List(r.Context(), leave.ListFilter{EmployeeID: employeeID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req leave.RejectLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.service.Reject(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}

func (h *LeaveHandler) MyQuota(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	quota, err := h.service.RemainingQuota(r.Context(), employeeID, parseYearQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, quota)
}

func (h *LeaveHandler) Quota(w http.ResponseWriter, r *http.Request) {
	quota, err := h.service.RemainingQuota(r.Context(), chi.URLParam(r, "employeeID"), parseYearQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, quota)
}

func (h *LeaveHandler) QuotaAll(w http.ResponseWriter, r *http.Request) {
	quotas, err := h.service.QuotaAll(r.Context(), parseYearQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, quotas)
}
