package employee

import (
	"errors"
	"strings"
)

// EmployeeDTO is the request payload for creating or updating an employee.
type EmployeeDTO struct {
	Name       string `json:"name" validate:"required"`
	Gender     string `json:"gender" validate:"required,oneof=Male Female"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

func (dto EmployeeDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if !ValidGender(dto.Gender) {
		return ErrInvalidGender
	}
	if strings.TrimSpace(dto.Email) == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(dto.Email, "@") {
		return errors.New("email is not valid")
	}
	if strings.TrimSpace(dto.Department) == "" {
		return errors.New("department is required")
	}
	return nil
}
