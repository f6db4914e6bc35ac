package directory

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hrx/internal/domain/data"
)

var ErrNotFound = errors.New("employee not found")

// Filter is the conjunctive employee-list filter: every set predicate must
// match. Query is a case-insensitive substring over name, email and job title.
type Filter struct {
	Query      string
	Department string
	Role       string
}

type Profile struct {
	Employee data.Employee   `json:"employee"`
	Manager  *data.Employee  `json:"manager,omitempty"`
	Reports  []data.Employee `json:"reports,omitempty"`
}

type NewEmployee struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Role       data.Role       `json:"role"`
	Department data.Department `json:"department"`
	JobTitle   string          `json:"jobTitle"`
	StartDate  string          `json:"startDate"`
	Salary     float64         `json:"salary"`
	Bio        string          `json:"bio"`
}

type Service struct {
	mu        sync.Mutex
	employees []data.Employee
}

func NewService() *Service {
	employees := make([]data.Employee, len(data.Employees))
	copy(employees, data.Employees)
	return &Service{employees: employees}
}

func (s *Service) All() []data.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]data.Employee, len(s.employees))
	copy(snapshot, s.employees)
	return snapshot
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.employees)
}

// List applies the filter over the full collection on every call. Predicate
// order is irrelevant: the result is the intersection of all set predicates.
func (s *Service) List(filter Filter) []data.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []data.Employee
	for _, emp := range s.employees {
		if matchesFilter(emp, filter) {
			matches = append(matches, emp)
		}
	}
	return matches
}

func matchesFilter(emp data.Employee, filter Filter) bool {
	if query := strings.ToLower(strings.TrimSpace(filter.Query)); query != "" {
		name := strings.ToLower(emp.Name)
		email := strings.ToLower(emp.Email)
		title := strings.ToLower(emp.JobTitle)
		if !strings.Contains(name, query) && !strings.Contains(email, query) && !strings.Contains(title, query) {
			return false
		}
	}
	if filter.Department != "" && !strings.EqualFold(filter.Department, "all") {
		if !strings.EqualFold(string(emp.Department), filter.Department) {
			return false
		}
	}
	if filter.Role != "" && !strings.EqualFold(filter.Role, "all") {
		if !strings.EqualFold(string(emp.Role), filter.Role) {
			return false
		}
	}
	return true
}

func (s *Service) Get(id string) (data.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return data.Employee{}, false
}

// GetProfile resolves the employee with their manager and direct reports.
// A dangling manager id degrades to no manager rather than an error.
func (s *Service) GetProfile(id string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile Profile
	found := false
	for _, emp := range s.employees {
		if emp.ID == id {
			profile.Employee = emp
			found = true
			break
		}
	}
	if !found {
		return Profile{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}

	if profile.Employee.ManagerID != "" {
		for _, emp := range s.employees {
			if emp.ID == profile.Employee.ManagerID {
				manager := emp
				profile.Manager = &manager
				break
			}
		}
	}
	for _, emp := range s.employees {
		if emp.ManagerID == id {
			profile.Reports = append(profile.Reports, emp)
		}
	}
	return profile, nil
}

// Add appends a new Active employee to the local list. Process local only.
func (s *Service) Add(input NewEmployee) (data.Employee, error) {
	if strings.TrimSpace(input.Name) == "" {
		return data.Employee{}, errors.New("name is required")
	}

	emp := data.Employee{
		ID:         "emp-" + uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Department: input.Department,
		JobTitle:   input.JobTitle,
		StartDate:  input.StartDate,
		Salary:     input.Salary,
		Avatar:     initials(input.Name),
		Status:     data.StatusActive,
		Bio:        input.Bio,
	}
	if emp.Role == "" {
		emp.Role = data.RoleEmployee
	}

	s.mu.Lock()
	s.employees = append(s.employees, emp)
	s.mu.Unlock()
	return emp, nil
}

func initials(name string) string {
	var letters []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		letters = append(letters, runes[0])
		if len(letters) == 2 {
			break
		}
	}
	return strings.ToUpper(string(letters))
}
