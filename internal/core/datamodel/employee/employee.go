package employee

import "time"

// Employee is the persistence model for the employees table.
type Employee struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"not null"`
	Gender     string    `gorm:"not null"`
	Email      string    `gorm:"uniqueIndex;not null"`
	Department string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// GenderCount is the scan target for the grouped gender query.
type GenderCount struct {
	Gender string
	Count  int64
}
