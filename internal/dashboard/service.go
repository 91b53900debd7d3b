package dashboard

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal/attendance"
)

type Service struct {
	employees  EmployeeStats
	attendance AttendanceStats
	logger     *slog.Logger
}

func NewService(employees EmployeeStats, attendanceStats AttendanceStats, logger *slog.Logger) *Service {
	return &Service{
		employees:  employees,
		attendance: attendanceStats,
		logger:     logger,
	}
}

// Summary computes today's dashboard numbers. The attendance rate uses the
// full employee count as denominator, so employees nobody marked today still
// drag the rate down; with zero employees the rate is zero.
func (s *Service) Summary() (*Summary, error) {
	total, err := s.employees.CountEmployees()
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, err
	}

	distribution, err := s.employees.GenderDistribution()
	if err != nil {
		s.logger.Error("failed to compute gender distribution", "error", err)
		return nil, err
	}

	var rate float64
	if total > 0 {
		today := time.Now().Format(attendance.DateLayout)
		present, err := s.attendance.PresentCount(today)
		if err != nil {
			s.logger.Error("failed to count present today", "error", err)
			return nil, err
		}
		rate = float64(present) / float64(total) * 100
	}

	return &Summary{
		TotalEmployees:        total,
		AttendanceRatePercent: rate,
		GenderDistribution:    distribution,
	}, nil
}
