package attendance

import (
	"errors"
	"time"
)

// MarkAttendanceDTO is the request payload for marking attendance. An empty
// date means today.
type MarkAttendanceDTO struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	Date       string `json:"date"`
	Present    bool   `json:"present"`
}

func (dto MarkAttendanceDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return errors.New("employee_id is required")
	}
	if dto.Date != "" {
		if _, err := time.Parse(DateLayout, dto.Date); err != nil {
			return errors.New("date must be formatted YYYY-MM-DD")
		}
	}
	return nil
}
