package sqlite

import (
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/shift"
	"gorm.io/gorm"
)

type ShiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) shift.RepositoryAPI {
	return &ShiftRepository{db: db}
}

func (r *ShiftRepository) Create(sh *shiftDatamodel.Shift) error {
	return r.db.Create(sh).Error
}

func (r *ShiftRepository) GetAllWithEmployee() ([]*shiftDatamodel.ShiftWithEmployee, error) {
	var rows []*shiftDatamodel.ShiftWithEmployee
	err := r.db.Model(&shiftDatamodel.Shift{}).
		Select("shifts.id, employees.name AS employee_name, shifts.shift_type, shifts.assigned_date").
		Joins("JOIN employees ON shifts.employee_id = employees.id").
		Order("shifts.assigned_date DESC, shifts.id DESC").
		Scan(&rows).Error
	return rows, err
}
