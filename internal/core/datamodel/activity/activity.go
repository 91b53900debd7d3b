package activity

import "time"

// Entry is the persistence model for the activity_log table. Entries are
// append-only; the description is a text snapshot so it survives deletion of
// the entities it mentions.
type Entry struct {
	ID          int64     `gorm:"primaryKey"`
	ActionType  string    `gorm:"column:action_type;not null"`
	Description string    `gorm:"not null"`
	Timestamp   time.Time `gorm:"column:timestamp"`
}

func (Entry) TableName() string {
	return "activity_log"
}
