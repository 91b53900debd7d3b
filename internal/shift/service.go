package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal/activity"
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/core/events"
	"github.com/frahmantamala/employee-management/internal/employee"
)

type ActivityRecorder interface {
	Record(actionType, description string) error
}

type Service struct {
	repo      RepositoryAPI
	directory EmployeeDirectory
	recorder  ActivityRecorder
	bus       events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, directory EmployeeDirectory, recorder ActivityRecorder, bus events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		recorder:  recorder,
		bus:       bus,
		logger:    logger,
	}
}

// AssignShift appends a shift row dated today for the employee. Assigning to
// an unknown employee id is a silent no-op: no row, no audit entry.
func (s *Service) AssignShift(dto AssignShiftDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("shift validation failed", "error", err)
		return err
	}

	emp, err := s.directory.GetEmployee(dto.EmployeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			s.logger.Warn("shift assignment for nonexistent employee ignored", "employee_id", dto.EmployeeID)
			return nil
		}
		s.logger.Error("failed to resolve employee", "error", err, "employee_id", dto.EmployeeID)
		return err
	}

	data := &shiftDatamodel.Shift{
		EmployeeID:   emp.ID,
		ShiftType:    dto.ShiftType,
		AssignedDate: time.Now().Format("2006-01-02"),
	}

	if err := s.repo.Create(data); err != nil {
		s.logger.Error("failed to create shift", "error", err, "employee_id", emp.ID)
		return err
	}

	if s.recorder != nil {
		if err := s.recorder.Record(activity.ActionShiftAssigned,
			fmt.Sprintf("Shift %s assigned to %s", dto.ShiftType, emp.Name)); err != nil {
			s.logger.Error("activity record failed", "error", err)
		}
	}
	if s.bus != nil {
		if err := s.bus.Publish(context.Background(), events.NewEmployeeUpdatedEvent("shift_assigned", emp.ID, emp.Name)); err != nil {
			s.logger.Error("failed to publish change event", "error", err)
		}
	}

	s.logger.Info("shift assigned", "employee_id", emp.ID, "shift_type", dto.ShiftType)
	return nil
}

// ListShifts returns every assignment joined with the employee name, most
// recently assigned first.
func (s *Service) ListShifts() ([]*Assignment, error) {
	data, err := s.repo.GetAllWithEmployee()
	if err != nil {
		s.logger.Error("failed to list shifts", "error", err)
		return nil, err
	}

	assignments := make([]*Assignment, 0, len(data))
	for _, sh := range data {
		assignments = append(assignments, assignmentFromDataModel(sh))
	}
	return assignments, nil
}
