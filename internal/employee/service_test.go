package employee_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/core/events"
	"github.com/frahmantamala/employee-management/internal/employee"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.RepositoryAPI for testing
type MockRepository struct {
	employees  map[int64]*employeeDatamodel.Employee
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		employees: make(map[int64]*employeeDatamodel.Employee),
		nextID:    1,
	}
}

func (m *MockRepository) Create(emp *employeeDatamodel.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *MockRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	emp, exists := m.employees[id]
	if !exists {
		return nil, nil
	}
	return emp, nil
}

func (m *MockRepository) GetAll() ([]*employeeDatamodel.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employeeDatamodel.Employee
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	return result, nil
}

func (m *MockRepository) ExistsByEmail(email string, excludeID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	for _, emp := range m.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRepository) Update(emp *employeeDatamodel.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	m.employees[emp.ID] = emp
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.employees, id)
	return nil
}

func (m *MockRepository) Count() (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	return int64(len(m.employees)), nil
}

func (m *MockRepository) CountByGender() ([]*employeeDatamodel.GenderCount, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	byGender := make(map[string]int64)
	for _, emp := range m.employees {
		byGender[emp.Gender]++
	}
	var counts []*employeeDatamodel.GenderCount
	for gender, count := range byGender {
		counts = append(counts, &employeeDatamodel.GenderCount{Gender: gender, Count: count})
	}
	return counts, nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

// MockRecorder captures audit trail appends
type MockRecorder struct {
	entries []string
}

func (m *MockRecorder) Record(actionType, description string) error {
	m.entries = append(m.entries, description)
	return nil
}

// MockPublisher captures published events
type MockPublisher struct {
	published []events.Event
}

func (m *MockPublisher) Publish(ctx context.Context, event events.Event) error {
	m.published = append(m.published, event)
	return nil
}

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		recorder *MockRecorder
		bus      *MockPublisher
		service  *employee.Service
	)

	validDTO := employee.EmployeeDTO{
		Name:       "Ada Lovelace",
		Gender:     "Female",
		Email:      "ada@example.com",
		Department: "Engineering",
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		recorder = &MockRecorder{}
		bus = &MockPublisher{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, recorder, bus, logger)
	})

	Describe("AddEmployee", func() {
		It("should create the employee and return it with an id", func() {
			result, err := service.AddEmployee(validDTO)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.ID).To(BeNumerically(">", 0))
			Expect(result.Name).To(Equal("Ada Lovelace"))
			Expect(result.CreatedAt).NotTo(BeZero())
		})

		It("should record an audit entry and publish a change event", func() {
			_, err := service.AddEmployee(validDTO)
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.entries).To(ConsistOf("New employee added: Ada Lovelace"))
			Expect(bus.published).To(HaveLen(1))
			Expect(bus.published[0].EventType()).To(Equal(events.EventTypeEmployeeUpdated))
		})

		Context("when the email is already taken", func() {
			BeforeEach(func() {
				_, err := service.AddEmployee(validDTO)
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return ErrDuplicateEmail and leave state unchanged", func() {
				dto := validDTO
				dto.Name = "Ada Byron"
				result, err := service.AddEmployee(dto)
				Expect(err).To(MatchError(employee.ErrDuplicateEmail))
				Expect(result).To(BeNil())

				count, err := service.CountEmployees()
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(1)))
			})

			It("should not record an audit entry for the rejected add", func() {
				dto := validDTO
				_, _ = service.AddEmployee(dto)
				Expect(recorder.entries).To(HaveLen(1))
			})
		})

		Context("when validation fails", func() {
			It("should reject an unknown gender label", func() {
				dto := validDTO
				dto.Gender = "Other"
				result, err := service.AddEmployee(dto)
				Expect(err).To(MatchError(employee.ErrInvalidGender))
				Expect(result).To(BeNil())
			})

			It("should reject a blank name", func() {
				dto := validDTO
				dto.Name = "   "
				_, err := service.AddEmployee(dto)
				Expect(err).To(HaveOccurred())
			})

			It("should reject an email without an @", func() {
				dto := validDTO
				dto.Email = "ada.example.com"
				_, err := service.AddEmployee(dto)
				Expect(err).To(HaveOccurred())
			})

			It("should not touch the repository", func() {
				dto := validDTO
				dto.Gender = "Other"
				_, _ = service.AddEmployee(dto)
				count, err := service.CountEmployees()
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())
			})
		})
	})

	Describe("UpdateEmployee", func() {
		var adaID int64

		BeforeEach(func() {
			result, err := service.AddEmployee(validDTO)
			Expect(err).NotTo(HaveOccurred())
			adaID = result.ID
		})

		It("should rewrite the record", func() {
			dto := validDTO
			dto.Department = "Research"
			result, err := service.UpdateEmployee(adaID, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Department).To(Equal("Research"))
		})

		It("should allow keeping the same email", func() {
			_, err := service.UpdateEmployee(adaID, validDTO)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an email taken by another employee", func() {
			grace := employee.EmployeeDTO{
				Name:       "Grace Hopper",
				Gender:     "Female",
				Email:      "grace@example.com",
				Department: "Engineering",
			}
			_, err := service.AddEmployee(grace)
			Expect(err).NotTo(HaveOccurred())

			dto := validDTO
			dto.Email = "grace@example.com"
			result, err := service.UpdateEmployee(adaID, dto)
			Expect(err).To(MatchError(employee.ErrDuplicateEmail))
			Expect(result).To(BeNil())

			stored, err := service.GetEmployee(adaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Email).To(Equal("ada@example.com"))
		})

		It("should return ErrEmployeeNotFound for a missing id", func() {
			_, err := service.UpdateEmployee(999, validDTO)
			Expect(err).To(MatchError(employee.ErrEmployeeNotFound))
		})
	})

	Describe("DeleteEmployee", func() {
		It("should delete and record the name captured before the cascade", func() {
			result, err := service.AddEmployee(validDTO)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteEmployee(result.ID)).To(Succeed())

			_, err = service.GetEmployee(result.ID)
			Expect(err).To(MatchError(employee.ErrEmployeeNotFound))
			Expect(recorder.entries).To(ContainElement("Employee deleted: Ada Lovelace"))
		})

		It("should be a no-op for a nonexistent id", func() {
			Expect(service.DeleteEmployee(999)).To(Succeed())
			Expect(recorder.entries).To(BeEmpty())
			Expect(bus.published).To(BeEmpty())
		})
	})

	Describe("GetEmployee", func() {
		It("should return ErrEmployeeNotFound for a missing id", func() {
			_, err := service.GetEmployee(42)
			Expect(err).To(MatchError(employee.ErrEmployeeNotFound))
		})

		It("should propagate repository errors", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))
			_, err := service.GetEmployee(42)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("database error"))
		})
	})

	Describe("GenderDistribution", func() {
		It("should return zero for both labels with no employees", func() {
			distribution, err := service.GenderDistribution()
			Expect(err).NotTo(HaveOccurred())
			Expect(distribution).To(HaveKeyWithValue("Male", 0.0))
			Expect(distribution).To(HaveKeyWithValue("Female", 0.0))
		})

		It("should return percentages that sum to 100", func() {
			for _, dto := range []employee.EmployeeDTO{
				{Name: "Ada Lovelace", Gender: "Female", Email: "ada@example.com", Department: "Engineering"},
				{Name: "Grace Hopper", Gender: "Female", Email: "grace@example.com", Department: "Engineering"},
				{Name: "Alan Turing", Gender: "Male", Email: "alan@example.com", Department: "Research"},
				{Name: "Dennis Ritchie", Gender: "Male", Email: "dennis@example.com", Department: "Engineering"},
			} {
				_, err := service.AddEmployee(dto)
				Expect(err).NotTo(HaveOccurred())
			}

			distribution, err := service.GenderDistribution()
			Expect(err).NotTo(HaveOccurred())
			Expect(distribution["Female"]).To(BeNumerically("~", 50.0, 0.001))
			Expect(distribution["Male"]).To(BeNumerically("~", 50.0, 0.001))
			Expect(distribution["Female"] + distribution["Male"]).To(BeNumerically("~", 100.0, 0.001))
		})

		It("should keep the missing label at zero when one gender dominates", func() {
			_, err := service.AddEmployee(validDTO)
			Expect(err).NotTo(HaveOccurred())

			distribution, err := service.GenderDistribution()
			Expect(err).NotTo(HaveOccurred())
			Expect(distribution["Female"]).To(BeNumerically("~", 100.0, 0.001))
			Expect(distribution["Male"]).To(BeZero())
		})
	})
})
