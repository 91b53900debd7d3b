package activity

import (
	"time"

	activityDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/activity"
)

// Action types recorded in the audit trail.
const (
	ActionEmployeeAdded    = "employee_added"
	ActionEmployeeUpdated  = "employee_updated"
	ActionEmployeeDeleted  = "employee_deleted"
	ActionShiftAssigned    = "shift_assigned"
	ActionAttendanceMarked = "attendance_marked"
)

// DefaultFeedLimit bounds the recent-activity read; the log itself grows
// unbounded.
const DefaultFeedLimit = 10

type Entry struct {
	ID          int64     `json:"id"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type RepositoryAPI interface {
	Create(entry *activityDatamodel.Entry) error
	GetRecent(limit int) ([]*activityDatamodel.Entry, error)
}

func FromDataModel(e *activityDatamodel.Entry) *Entry {
	return &Entry{
		ID:          e.ID,
		ActionType:  e.ActionType,
		Description: e.Description,
		Timestamp:   e.Timestamp,
	}
}
