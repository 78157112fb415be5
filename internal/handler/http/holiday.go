package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
	"github.com/presensiku/payroll-backend-go/internal/handler/http/response"
	"github.com/presensiku/payroll-backend-go/internal/service/calendar"
)

type HolidayHandler struct {
	service *calendar.HolidayService
}

func NewHolidayHandler(service *calendar.HolidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

func (h *HolidayHandler) Declare(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.service.Declare(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday declared", result)
}

func (h *HolidayHandler) ListYear(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.service.ListYear(r.Context(), parseYearQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

func (h *HolidayHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed", nil)
}
