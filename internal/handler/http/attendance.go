package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/presensiku/payroll-backend-go/internal/domain/attendance"
	"github.com/presensiku/payroll-backend-go/internal/handler/http/response"
	attendancesvc "github.com/presensiku/payroll-backend-go/internal/service/attendance"
)

type AttendanceHandler struct {
	service *attendancesvc.AttendanceService
}

func NewAttendanceHandler(service *attendancesvc.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
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

	result, err := h.service.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", result)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
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

	result, err := h.service.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *AttendanceHandler) MySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	h.summary(w, r, employeeID)
}

func (h *AttendanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, chi.URLParam(r, "employeeID"))
}

func (h *AttendanceHandler) summary(w http.ResponseWriter, r *http.Request, employeeID string) {
	start, end, err := parseRangeQuery(r)
	if err != nil {
		response.BadRequest(w, "start and end must be YYYY-MM-DD", nil)
		return
	}

	summary, err := h.service.Summarize(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func (h *AttendanceHandler) MyDay(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimsEmployeeID(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	date, err := parseDateQuery(r, "date")
	if err != nil {
		date = time.Now()
	}

	day, err := h.service.Day(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if day == nil {
		response.NotFound(w, "Attendance record not found")
		return
	}

	response.Success(w, day)
}

func (h *AttendanceHandler) ListDay(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateQuery(r, "date")
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	records, err := h.service.ListDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func (h *AttendanceHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req attendance.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.service.Edit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}
