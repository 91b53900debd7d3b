package employee

import (
	"encoding/json"
	"net/http"
	"strconv"

	errors "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	AddEmployee(dto EmployeeDTO) (*Employee, error)
	UpdateEmployee(id int64, dto EmployeeDTO) (*Employee, error)
	DeleteEmployee(id int64) error
	GetEmployee(id int64) (*Employee, error)
	ListEmployees() ([]*Employee, error)
	GenderDistribution() (map[string]float64, error)
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

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Warn("CreateEmployee: validation error", "error", err)
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeValidationFailed))
		return
	}

	emp, err := h.Service.AddEmployee(dto)
	if err != nil {
		h.Logger.Warn("CreateEmployee: service error", "error", err, "email", dto.Email)
		h.handleEmployeeError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, emp)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.Service.GetEmployee(id)
	if err != nil {
		h.handleEmployeeError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	emps, err := h.Service.ListEmployees()
	if err != nil {
		h.Logger.Error("ListEmployees: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees": emps,
		"count":     len(emps),
	})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var dto EmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateEmployee: invalid request body", "error", err)
		h.HandleError(w, errors.NewValidationError("invalid request body", errors.ErrCodeValidationFailed))
		return
	}

	if err := dto.Validate(); err != nil {
		h.Logger.Warn("UpdateEmployee: validation error", "error", err)
		h.HandleError(w, errors.NewValidationError(err.Error(), errors.ErrCodeValidationFailed))
		return
	}

	emp, err := h.Service.UpdateEmployee(id, dto)
	if err != nil {
		h.Logger.Warn("UpdateEmployee: service error", "error", err, "employee_id", id)
		h.handleEmployeeError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteEmployee(id); err != nil {
		h.Logger.Error("DeleteEmployee: service error", "error", err, "employee_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GetGenderDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Service.GenderDistribution()
	if err != nil {
		h.Logger.Error("GetGenderDistribution: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to compute gender distribution")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"gender_distribution": distribution})
}

func (h *Handler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("invalid employee ID", "id", idStr)
		h.HandleError(w, errors.NewValidationError("invalid employee ID", errors.ErrCodeValidationFailed))
		return 0, false
	}
	return id, true
}

func (h *Handler) handleEmployeeError(w http.ResponseWriter, err error) {
	switch err {
	case ErrEmployeeNotFound:
		h.HandleError(w, errors.NewNotFoundError("employee not found", errors.ErrCodeEmployeeNotFound))
	case ErrDuplicateEmail:
		h.HandleError(w, errors.NewConflictError("email already registered to another employee", errors.ErrCodeDuplicateEmail))
	case ErrInvalidGender:
		h.HandleError(w, errors.NewValidationError("gender must be Male or Female", errors.ErrCodeInvalidGender))
	default:
		h.HandleError(w, err)
	}
}
