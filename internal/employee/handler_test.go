package employee_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	activityDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/activity"
	attendanceDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/attendance"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	shiftDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/shift"
	"github.com/frahmantamala/employee-management/internal/employee"
	employeeSQLite "github.com/frahmantamala/employee-management/internal/employee/sqlite"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db      *gorm.DB
		service *employee.Service
		handler *employee.Handler
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&employeeDatamodel.Employee{},
			&shiftDatamodel.Shift{},
			&attendanceDatamodel.Record{},
			&activityDatamodel.Entry{},
		)
		Expect(err).NotTo(HaveOccurred())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		repo := employeeSQLite.NewEmployeeRepository(db)
		service = employee.NewService(repo, nil, nil, slogger)
		handler = employee.NewHandler(service)
	})

	postJSON := func(target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.CreateEmployee(w, req)
		return w
	}

	withURLParam := func(r *http.Request, key, value string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add(key, value)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	Describe("POST /employees", func() {
		It("should create an employee and return 201", func() {
			w := postJSON("/employees", `{"name":"Ada Lovelace","gender":"Female","email":"ada@example.com","department":"Engineering"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var created employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Name).To(Equal("Ada Lovelace"))
		})

		It("should return 400 for an invalid gender label", func() {
			w := postJSON("/employees", `{"name":"Ada","gender":"Other","email":"ada@example.com","department":"Engineering"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 for a malformed body", func() {
			w := postJSON("/employees", `{not json`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 409 for a duplicate email", func() {
			first := postJSON("/employees", `{"name":"Ada Lovelace","gender":"Female","email":"ada@example.com","department":"Engineering"}`)
			Expect(first.Code).To(Equal(http.StatusCreated))

			second := postJSON("/employees", `{"name":"Ada Byron","gender":"Female","email":"ada@example.com","department":"Research"}`)
			Expect(second.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("GET /employees/{id}", func() {
		It("should return 404 for an unknown id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/999", nil)
			req = withURLParam(req, "id", "999")
			w := httptest.NewRecorder()

			handler.GetEmployee(w, req)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 for a non-numeric id", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
			req = withURLParam(req, "id", "abc")
			w := httptest.NewRecorder()

			handler.GetEmployee(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /employees", func() {
		It("should return the list with a count", func() {
			Expect(postJSON("/employees", `{"name":"Ada Lovelace","gender":"Female","email":"ada@example.com","department":"Engineering"}`).Code).To(Equal(http.StatusCreated))

			req := httptest.NewRequest(http.MethodGet, "/employees", nil)
			w := httptest.NewRecorder()
			handler.ListEmployees(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var response struct {
				Employees []*employee.Employee `json:"employees"`
				Count     int                  `json:"count"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Count).To(Equal(1))
			Expect(response.Employees[0].Email).To(Equal("ada@example.com"))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("should delete the employee and report deleted for a repeat call", func() {
			created := postJSON("/employees", `{"name":"Ada Lovelace","gender":"Female","email":"ada@example.com","department":"Engineering"}`)
			var emp employee.Employee
			Expect(json.NewDecoder(created.Body).Decode(&emp)).To(Succeed())

			for i := 0; i < 2; i++ {
				req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
				req = withURLParam(req, "id", "1")
				w := httptest.NewRecorder()
				handler.DeleteEmployee(w, req)
				Expect(w.Code).To(Equal(http.StatusOK))
			}

			_, err := service.GetEmployee(emp.ID)
			Expect(err).To(MatchError(employee.ErrEmployeeNotFound))
		})
	})

	Describe("GET /employees/gender-distribution", func() {
		It("should return both labels at zero with no employees", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/gender-distribution", nil)
			w := httptest.NewRecorder()
			handler.GetGenderDistribution(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				GenderDistribution map[string]float64 `json:"gender_distribution"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.GenderDistribution).To(HaveKeyWithValue("Male", 0.0))
			Expect(response.GenderDistribution).To(HaveKeyWithValue("Female", 0.0))
		})
	})
})
