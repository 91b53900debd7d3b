package attendance

// Record is the persistence model for the attendance table. The composite
// unique index backs the one-row-per-(employee, date) upsert.
type Record struct {
	ID         int64  `gorm:"primaryKey"`
	EmployeeID int64  `gorm:"column:employee_id;uniqueIndex:idx_attendance_employee_date;not null"`
	Date       string `gorm:"column:date;uniqueIndex:idx_attendance_employee_date;not null"`
	Present    bool   `gorm:"not null"`
}

func (Record) TableName() string {
	return "attendance"
}

// RecordWithEmployee is the scan target for the per-date listing joined
// against the employees table.
type RecordWithEmployee struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	Present      bool
}

// DailyCount is the scan target for the grouped trend query.
type DailyCount struct {
	Date         string
	PresentCount int64
}
