package shift

// Shift is the persistence model for the shifts table. Assignments are
// append-only history; rows are never updated or deleted except when the
// owning employee is removed.
type Shift struct {
	ID           int64  `gorm:"primaryKey"`
	EmployeeID   int64  `gorm:"column:employee_id;index;not null"`
	ShiftType    string `gorm:"column:shift_type;not null"`
	AssignedDate string `gorm:"column:assigned_date;not null"`
}

func (Shift) TableName() string {
	return "shifts"
}

// ShiftWithEmployee is the scan target for the shift listing joined against
// the employees table.
type ShiftWithEmployee struct {
	ID           int64
	EmployeeName string
	ShiftType    string
	AssignedDate string
}
