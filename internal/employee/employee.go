package employee

import (
	"errors"
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
)

// Gender labels accepted by the store. Anything else is a constraint
// violation, mirroring the CHECK on the employees table.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Genders lists the accepted labels in display order.
var Genders = []string{GenderMale, GenderFemale}

func ValidGender(gender string) bool {
	return gender == GenderMale || gender == GenderFemale
}

type Employee struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Gender     string    `json:"gender"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// Domain errors. Constraint violations are reported through these rather
// than raised as storage faults; callers surface them to the user and state
// is left unchanged.
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateEmail   = errors.New("email already registered to another employee")
	ErrInvalidGender    = errors.New("gender must be Male or Female")
)

type RepositoryAPI interface {
	Create(emp *employeeDatamodel.Employee) error
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	GetAll() ([]*employeeDatamodel.Employee, error)
	ExistsByEmail(email string, excludeID int64) (bool, error)
	Update(emp *employeeDatamodel.Employee) error
	Delete(id int64) error
	Count() (int64, error)
	CountByGender() ([]*employeeDatamodel.GenderCount, error)
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:         e.ID,
		Name:       e.Name,
		Gender:     e.Gender,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:         e.ID,
		Name:       e.Name,
		Gender:     e.Gender,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  e.CreatedAt,
	}
}

func FromDataModelSlice(emps []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(emps))
	for i, e := range emps {
		result[i] = FromDataModel(e)
	}
	return result
}
