package attendance

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	errors "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
)

type ServiceAPI interface {
	MarkAttendance(dto MarkAttendanceDTO) error
	AttendanceForDate(date string) ([]*DayRecord, error)
	AttendanceTrend(windowDays int) ([]*TrendPoint, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(nil),
		Service:     service,
	}
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var dto MarkAttendanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkAttendance: invalid request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Warn("MarkAttendance: validation error", "error", err)
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeInvalidDate))
		return
	}

	if err := h.Service.MarkAttendance(dto); err != nil {
		h.Logger.Error("MarkAttendance: service error", "error", err, "employee_id", dto.EmployeeID)
		h.WriteError(w, http.StatusInternalServerError, "failed to mark attendance")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "marked"})
}

func (h *Handler) GetAttendanceForDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		h.HandleError(w, errors.NewValidationError("date must be formatted YYYY-MM-DD", errors.ErrCodeInvalidDate))
		return
	}

	records, err := h.Service.AttendanceForDate(date)
	if err != nil {
		h.Logger.Error("GetAttendanceForDate: service error", "error", err, "date", date)
		h.WriteError(w, http.StatusInternalServerError, "failed to get attendance")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"date":    date,
		"records": records,
	})
}

func (h *Handler) GetAttendanceTrend(w http.ResponseWriter, r *http.Request) {
	days := DefaultTrendWindow
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 && d <= 365 {
			days = d
		}
	}

	points, err := h.Service.AttendanceTrend(days)
	if err != nil {
		h.Logger.Error("GetAttendanceTrend: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute attendance trend")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"window_days": days,
		"trend":       points,
	})
}
