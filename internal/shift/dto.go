package shift

import (
	"errors"
	"strings"
)

// AssignShiftDTO is the request payload for assigning a shift.
type AssignShiftDTO struct {
	EmployeeID int64  `json:"employee_id" validate:"required"`
	ShiftType  string `json:"shift_type" validate:"required"`
}

func (dto AssignShiftDTO) Validate() error {
	if dto.EmployeeID <= 0 {
		return errors.New("employee_id is required")
	}
	if strings.TrimSpace(dto.ShiftType) == "" {
		return errors.New("shift_type is required")
	}
	return nil
}
