package shift

import (
	"encoding/json"
	"net/http"

	errors "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
)

type ServiceAPI interface {
	AssignShift(dto AssignShiftDTO) error
	ListShifts() ([]*Assignment, error)
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

func (h *Handler) AssignShift(w http.ResponseWriter, r *http.Request) {
	var dto AssignShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AssignShift: invalid request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Warn("AssignShift: validation error", "error", err)
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeInvalidShiftType))
		return
	}

	if err := h.Service.AssignShift(dto); err != nil {
		h.Logger.Error("AssignShift: service error", "error", err, "employee_id", dto.EmployeeID)
		h.WriteError(w, http.StatusInternalServerError, "failed to assign shift")
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]string{"status": "assigned"})
}

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.Service.ListShifts()
	if err != nil {
		h.Logger.Error("ListShifts: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list shifts")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"shifts": assignments,
		"count":  len(assignments),
	})
}
