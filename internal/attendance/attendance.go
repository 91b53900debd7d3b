package attendance

import (
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	"github.com/frahmantamala/employee-management/internal/employee"
)

// DateLayout is the calendar-date wire and storage format.
const DateLayout = "2006-01-02"

// DefaultTrendWindow is the number of calendar days the trend chart covers.
const DefaultTrendWindow = 30

// DayRecord is one marked employee for a given date. Employees without a row
// for the date are simply absent from the result: "unmarked" is distinct from
// explicitly marked absent.
type DayRecord struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Present      bool   `json:"present"`
}

// TrendPoint is one calendar day of the attendance trend. TotalEmployees is
// the number of employees that exist, not the number with a row that day.
type TrendPoint struct {
	Date           string `json:"date"`
	TotalEmployees int64  `json:"total_employees"`
	PresentCount   int64  `json:"present_count"`
}

type RepositoryAPI interface {
	Upsert(rec *attendanceDatamodel.Record) error
	GetByDate(date string) ([]*attendanceDatamodel.RecordWithEmployee, error)
	PresentCountsByDateRange(from, to string) ([]*attendanceDatamodel.DailyCount, error)
	PresentCountByDate(date string) (int64, error)
}

// EmployeeDirectory resolves employee ids and sizes the trend denominator;
// implemented by the employee service.
type EmployeeDirectory interface {
	GetEmployee(id int64) (*employee.Employee, error)
	CountEmployees() (int64, error)
}

func dayRecordFromDataModel(r *attendanceDatamodel.RecordWithEmployee) *DayRecord {
	return &DayRecord{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Present:      r.Present,
	}
}
