package shift

import (
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/employee"
)

// Well-known shift labels. The column is free text, these are just the
// values the UI offers.
const (
	TypeMorning = "Morning"
	TypeEvening = "Evening"
	TypeNight   = "Night"
)

// Assignment is one row of the shift listing, already joined against the
// employee table.
type Assignment struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	ShiftType    string `json:"shift_type"`
	AssignedDate string `json:"assigned_date"`
}

type RepositoryAPI interface {
	Create(sh *shiftDatamodel.Shift) error
	GetAllWithEmployee() ([]*shiftDatamodel.ShiftWithEmployee, error)
}

// EmployeeDirectory resolves employee ids to records; implemented by the
// employee service.
type EmployeeDirectory interface {
	GetEmployee(id int64) (*employee.Employee, error)
}

func assignmentFromDataModel(s *shiftDatamodel.ShiftWithEmployee) *Assignment {
	return &Assignment{
		ID:           s.ID,
		EmployeeName: s.EmployeeName,
		ShiftType:    s.ShiftType,
		AssignedDate: s.AssignedDate,
	}
}
