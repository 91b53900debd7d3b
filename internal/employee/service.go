package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal/activity"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/core/events"
)

// ActivityRecorder appends audit trail entries after successful mutations.
type ActivityRecorder interface {
	Record(actionType, description string) error
}

// Service handles employee business logic.
type Service struct {
	repo     RepositoryAPI
	recorder ActivityRecorder
	bus      events.Publisher
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, recorder ActivityRecorder, bus events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		recorder: recorder,
		bus:      bus,
		logger:   logger,
	}
}

// AddEmployee creates a new employee record. Duplicate emails and invalid
// gender labels come back as domain errors with no state change.
func (s *Service) AddEmployee(dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "email", dto.Email)
		return nil, err
	}

	taken, err := s.repo.ExistsByEmail(dto.Email, 0)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err, "email", dto.Email)
		return nil, err
	}
	if taken {
		s.logger.Warn("duplicate email on add", "email", dto.Email)
		return nil, ErrDuplicateEmail
	}

	data := &employeeDatamodel.Employee{
		Name:       dto.Name,
		Gender:     dto.Gender,
		Email:      dto.Email,
		Department: dto.Department,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create employee", "error", err, "email", dto.Email)
		return nil, err
	}

	s.record(activity.ActionEmployeeAdded, fmt.Sprintf("New employee added: %s", data.Name))
	s.notify("added", data.ID, data.Name)

	s.logger.Info("employee created", "employee_id", data.ID, "email", data.Email)
	return FromDataModel(data), nil
}

// UpdateEmployee rewrites an employee record, re-checking the email
// uniqueness constraint against all other rows.
func (s *Service) UpdateEmployee(id int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "employee_id", id)
		return nil, err
	}

	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	if existing == nil {
		return nil, ErrEmployeeNotFound
	}

	taken, err := s.repo.ExistsByEmail(dto.Email, id)
	if err != nil {
		s.logger.Error("failed to check email uniqueness", "error", err, "email", dto.Email)
		return nil, err
	}
	if taken {
		s.logger.Warn("duplicate email on update", "email", dto.Email, "employee_id", id)
		return nil, ErrDuplicateEmail
	}

	existing.Name = dto.Name
	existing.Gender = dto.Gender
	existing.Email = dto.Email
	existing.Department = dto.Department

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.record(activity.ActionEmployeeUpdated, fmt.Sprintf("Employee updated: %s", existing.Name))
	s.notify("updated", existing.ID, existing.Name)

	s.logger.Info("employee updated", "employee_id", id)
	return FromDataModel(existing), nil
}

// DeleteEmployee removes the employee and all dependent shift and attendance
// rows. Deleting a nonexistent id is a no-op. The name is captured before the
// cascade so the audit entry survives the deletion.
func (s *Service) DeleteEmployee(id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return err
	}
	if existing == nil {
		s.logger.Warn("delete requested for nonexistent employee", "employee_id", id)
		return nil
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return err
	}

	s.record(activity.ActionEmployeeDeleted, fmt.Sprintf("Employee deleted: %s", existing.Name))
	s.notify("deleted", id, existing.Name)

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	data, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	if data == nil {
		return nil, ErrEmployeeNotFound
	}
	return FromDataModel(data), nil
}

func (s *Service) ListEmployees() ([]*Employee, error) {
	data, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return FromDataModelSlice(data), nil
}

func (s *Service) CountEmployees() (int64, error) {
	return s.repo.Count()
}

// GenderDistribution returns the share of each gender label as a percentage
// of all employees (0-100). Both labels are always present in the result;
// with zero employees every percentage is zero.
func (s *Service) GenderDistribution() (map[string]float64, error) {
	counts, err := s.repo.CountByGender()
	if err != nil {
		s.logger.Error("failed to count by gender", "error", err)
		return nil, err
	}

	var total int64
	for _, c := range counts {
		total += c.Count
	}

	distribution := make(map[string]float64, len(Genders))
	for _, g := range Genders {
		distribution[g] = 0
	}
	if total == 0 {
		return distribution, nil
	}

	for _, c := range counts {
		distribution[c.Gender] = float64(c.Count) / float64(total) * 100
	}

	return distribution, nil
}

// record appends an audit entry; a failed append never rolls back the
// committed mutation.
func (s *Service) record(actionType, description string) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(actionType, description); err != nil {
		s.logger.Error("activity record failed", "action_type", actionType, "error", err)
	}
}

func (s *Service) notify(action string, employeeID int64, name string) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(context.Background(), events.NewEmployeeUpdatedEvent(action, employeeID, name)); err != nil {
		s.logger.Error("failed to publish change event", "action", action, "error", err)
	}
}
