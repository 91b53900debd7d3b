package dashboard

// Summary is the dashboard header block: headcount, today's attendance rate
// and the gender split, computed in one call so the widgets refresh together.
type Summary struct {
	TotalEmployees        int64              `json:"total_employees"`
	AttendanceRatePercent float64            `json:"attendance_rate_percent"`
	GenderDistribution    map[string]float64 `json:"gender_distribution"`
}

// EmployeeStats is the slice of the employee service the dashboard needs.
type EmployeeStats interface {
	CountEmployees() (int64, error)
	GenderDistribution() (map[string]float64, error)
}

// AttendanceStats is the slice of the attendance service the dashboard needs.
type AttendanceStats interface {
	PresentCount(date string) (int64, error)
}
