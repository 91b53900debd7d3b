package sqlite

import (
	"github.com/frahmantamala/employee-management/internal/attendance"
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) attendance.RepositoryAPI {
	return &AttendanceRepository{db: db}
}

// Upsert inserts the row or, when the (employee_id, date) pair already
// exists, overwrites the present flag in place.
func (r *AttendanceRepository) Upsert(rec *attendanceDatamodel.Record) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"present"}),
	}).Create(rec).Error
}

func (r *AttendanceRepository) GetByDate(date string) ([]*attendanceDatamodel.RecordWithEmployee, error) {
	var rows []*attendanceDatamodel.RecordWithEmployee
	err := r.db.Model(&attendanceDatamodel.Record{}).
		Select("attendance.id, employees.id AS employee_id, employees.name AS employee_name, attendance.present").
		Joins("JOIN employees ON attendance.employee_id = employees.id").
		Where("attendance.date = ?", date).
		Scan(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) PresentCountsByDateRange(from, to string) ([]*attendanceDatamodel.DailyCount, error) {
	var rows []*attendanceDatamodel.DailyCount
	err := r.db.Model(&attendanceDatamodel.Record{}).
		Select("date, SUM(CASE WHEN present THEN 1 ELSE 0 END) AS present_count").
		Where("date BETWEEN ? AND ?", from, to).
		Group("date").
		Scan(&rows).Error
	return rows, err
}

func (r *AttendanceRepository) PresentCountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&attendanceDatamodel.Record{}).
		Where("date = ? AND present = ?", date, true).
		Count(&count).Error
	return count, err
}
