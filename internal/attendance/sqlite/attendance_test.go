package sqlite_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/employee-management/internal/attendance"
	attendanceSQLite "github.com/frahmantamala/employee-management/internal/attendance/sqlite"
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAttendanceSQLite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Attendance SQLite Suite")
}

var _ = Describe("Attendance SQLite Repository", func() {
	var (
		db    *gorm.DB
		repo  attendance.RepositoryAPI
		ada   *employeeDatamodel.Employee
		grace *employeeDatamodel.Employee
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&employeeDatamodel.Employee{}, &attendanceDatamodel.Record{})
		Expect(err).NotTo(HaveOccurred())

		ada = &employeeDatamodel.Employee{
			Name:       "Ada Lovelace",
			Gender:     "Female",
			Email:      "ada@example.com",
			Department: "Engineering",
			CreatedAt:  time.Now(),
		}
		grace = &employeeDatamodel.Employee{
			Name:       "Grace Hopper",
			Gender:     "Female",
			Email:      "grace@example.com",
			Department: "Engineering",
			CreatedAt:  time.Now(),
		}
		Expect(db.Create(ada).Error).To(Succeed())
		Expect(db.Create(grace).Error).To(Succeed())

		repo = attendanceSQLite.NewAttendanceRepository(db)
	})

	Describe("Upsert", func() {
		It("should insert a new row", func() {
			rec := &attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true}
			Expect(repo.Upsert(rec)).To(Succeed())

			var count int64
			Expect(db.Model(&attendanceDatamodel.Record{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("should keep one row per (employee, date) with the latest value", func() {
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: false})).To(Succeed())

			var rows []*attendanceDatamodel.Record
			Expect(db.Where("employee_id = ? AND date = ?", ada.ID, "2026-09-01").Find(&rows).Error).To(Succeed())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Present).To(BeFalse())
		})

		It("should keep separate rows per date and per employee", func() {
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-02", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: grace.ID, Date: "2026-09-01", Present: true})).To(Succeed())

			var count int64
			Expect(db.Model(&attendanceDatamodel.Record{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(3)))
		})
	})

	Describe("GetByDate", func() {
		BeforeEach(func() {
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: grace.ID, Date: "2026-09-01", Present: false})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-02", Present: true})).To(Succeed())
		})

		It("should return only rows for the given date with names joined", func() {
			rows, err := repo.GetByDate("2026-09-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))

			byName := make(map[string]bool, len(rows))
			for _, r := range rows {
				byName[r.EmployeeName] = r.Present
			}
			Expect(byName).To(HaveKeyWithValue("Ada Lovelace", true))
			Expect(byName).To(HaveKeyWithValue("Grace Hopper", false))
		})

		It("should return an empty slice for an unmarked date", func() {
			rows, err := repo.GetByDate("2026-08-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("PresentCountsByDateRange", func() {
		BeforeEach(func() {
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: grace.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-02", Present: false})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-08-01", Present: true})).To(Succeed())
		})

		It("should count only present rows, grouped by date", func() {
			counts, err := repo.PresentCountsByDateRange("2026-09-01", "2026-09-30")
			Expect(err).NotTo(HaveOccurred())

			byDate := make(map[string]int64, len(counts))
			for _, c := range counts {
				byDate[c.Date] = c.PresentCount
			}
			Expect(byDate).To(HaveKeyWithValue("2026-09-01", int64(2)))
			Expect(byDate).To(HaveKeyWithValue("2026-09-02", int64(0)))
			Expect(byDate).NotTo(HaveKey("2026-08-01"))
		})
	})

	Describe("PresentCountByDate", func() {
		BeforeEach(func() {
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: ada.ID, Date: "2026-09-01", Present: true})).To(Succeed())
			Expect(repo.Upsert(&attendanceDatamodel.Record{EmployeeID: grace.ID, Date: "2026-09-01", Present: false})).To(Succeed())
		})

		It("should exclude absent rows from the count", func() {
			count, err := repo.PresentCountByDate("2026-09-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(1)))
		})

		It("should return zero for an unmarked date", func() {
			count, err := repo.PresentCountByDate("2026-08-01")
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})
	})
})
