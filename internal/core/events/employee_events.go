package events

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeEmployeeUpdated is the cross-view refresh signal: the presentation
// layer re-queries its tables when it sees one, instead of waiting for the
// next poll tick.
const EventTypeEmployeeUpdated = "employee_updated"

// NewEmployeeUpdatedEvent builds the change notification emitted after any
// successful mutation (add/update/delete, shift assignment, attendance mark).
func NewEmployeeUpdatedEvent(action string, employeeID int64, employeeName string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventTypeEmployeeUpdated,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"action":        action,
			"employee_id":   employeeID,
			"employee_name": employeeName,
		},
	}
}
