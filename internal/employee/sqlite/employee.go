package sqlite

import (
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	var emps []*employeeDatamodel.Employee
	err := r.db.Find(&emps).Error
	return emps, err
}

// ExistsByEmail reports whether the email is already taken by an employee
// other than excludeID. Pass 0 to check against every row.
func (r *EmployeeRepository) ExistsByEmail(email string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.Model(&employeeDatamodel.Employee{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) error {
	return r.db.Save(emp).Error
}

// Delete removes the employee row together with its dependent attendance and
// shift rows. Children go first so no orphan survives a partial failure.
func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&attendanceDatamodel.Record{}).Error; err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&shiftDatamodel.Shift{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
	})
}

func (r *EmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&employeeDatamodel.Employee{}).Count(&count).Error
	return count, err
}

func (r *EmployeeRepository) CountByGender() ([]*employeeDatamodel.GenderCount, error) {
	var counts []*employeeDatamodel.GenderCount
	err := r.db.Model(&employeeDatamodel.Employee{}).
		Select("gender, COUNT(*) as count").
		Group("gender").
		Scan(&counts).Error
	return counts, err
}
