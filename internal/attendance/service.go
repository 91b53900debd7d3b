package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/employee-management/internal/activity"
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	"github.com/frahmantamala/employee-management/internal/core/events"
	"github.com/frahmantamala/employee-management/internal/employee"
)

type ActivityRecorder interface {
	Record(actionType, description string) error
}

type Service struct {
	repo      RepositoryAPI
	directory EmployeeDirectory
	recorder  ActivityRecorder
	bus       events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, directory EmployeeDirectory, recorder ActivityRecorder, bus events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		recorder:  recorder,
		bus:       bus,
		logger:    logger,
	}
}

// MarkAttendance upserts the (employee, date) row to the given present
// value: marking the same pair twice keeps one row with the latest value.
// Marking an unknown employee id is a silent no-op.
func (s *Service) MarkAttendance(dto MarkAttendanceDTO) error {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("attendance validation failed", "error", err)
		return err
	}

	date := dto.Date
	if date == "" {
		date = time.Now().Format(DateLayout)
	}

	emp, err := s.directory.GetEmployee(dto.EmployeeID)
	if err != nil {
		if err == employee.ErrEmployeeNotFound {
			s.logger.Warn("attendance mark for nonexistent employee ignored", "employee_id", dto.EmployeeID)
			return nil
		}
		s.logger.Error("failed to resolve employee", "error", err, "employee_id", dto.EmployeeID)
		return err
	}

	rec := &attendanceDatamodel.Record{
		EmployeeID: emp.ID,
		Date:       date,
		Present:    dto.Present,
	}

	if err := s.repo.Upsert(rec); err != nil {
		s.logger.Error("failed to upsert attendance", "error", err, "employee_id", emp.ID, "date", date)
		return err
	}

	status := "absent"
	if dto.Present {
		status = "present"
	}
	if s.recorder != nil {
		if err := s.recorder.Record(activity.ActionAttendanceMarked,
			fmt.Sprintf("Marked %s as %s", emp.Name, status)); err != nil {
			s.logger.Error("activity record failed", "error", err)
		}
	}
	if s.bus != nil {
		if err := s.bus.Publish(context.Background(), events.NewEmployeeUpdatedEvent("attendance_marked", emp.ID, emp.Name)); err != nil {
			s.logger.Error("failed to publish change event", "error", err)
		}
	}

	s.logger.Info("attendance marked", "employee_id", emp.ID, "date", date, "present", dto.Present)
	return nil
}

// AttendanceForDate returns the marked rows for one date, joined with the
// employee name. Employees with no row for the date are not included.
func (s *Service) AttendanceForDate(date string) ([]*DayRecord, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("date must be formatted YYYY-MM-DD")
	}

	data, err := s.repo.GetByDate(date)
	if err != nil {
		s.logger.Error("failed to get attendance by date", "error", err, "date", date)
		return nil, err
	}

	records := make([]*DayRecord, 0, len(data))
	for _, r := range data {
		records = append(records, dayRecordFromDataModel(r))
	}
	return records, nil
}

// AttendanceTrend returns exactly windowDays points, one per calendar day up
// to and including today, most recent first. Days with no marked rows still
// appear, carrying the full employee count and zero present. Stored rows with
// unparseable dates are skipped so one corrupt row cannot blank the chart.
func (s *Service) AttendanceTrend(windowDays int) ([]*TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindow
	}

	total, err := s.directory.CountEmployees()
	if err != nil {
		s.logger.Error("failed to count employees", "error", err)
		return nil, err
	}

	today := time.Now()
	from := today.AddDate(0, 0, -(windowDays - 1)).Format(DateLayout)
	to := today.Format(DateLayout)

	counts, err := s.repo.PresentCountsByDateRange(from, to)
	if err != nil {
		s.logger.Error("failed to get attendance counts", "error", err, "from", from, "to", to)
		return nil, err
	}

	presentByDate := make(map[string]int64, len(counts))
	for _, c := range counts {
		if _, err := time.Parse(DateLayout, c.Date); err != nil {
			s.logger.Warn("skipping attendance row with malformed date", "date", c.Date)
			continue
		}
		presentByDate[c.Date] = c.PresentCount
	}

	points := make([]*TrendPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := today.AddDate(0, 0, -i).Format(DateLayout)
		points = append(points, &TrendPoint{
			Date:           date,
			TotalEmployees: total,
			PresentCount:   presentByDate[date],
		})
	}

	return points, nil
}

// PresentCount returns the number of employees marked present on the date.
func (s *Service) PresentCount(date string) (int64, error) {
	count, err := s.repo.PresentCountByDate(date)
	if err != nil {
		s.logger.Error("failed to count present", "error", err, "date", date)
		return 0, err
	}
	return count, nil
}
