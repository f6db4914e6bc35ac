package projects

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hrx/internal/domain/data"
)

type NewProject struct {
	Name        string  `json:"name"`
	Client      string  `json:"client"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
}

type Stats struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Completed   int     `json:"completed"`
	TotalBudget float64 `json:"totalBudget"`
}

type Service struct {
	mu       sync.Mutex
	projects []data.Project
}

func NewService() *Service {
	projects := make([]data.Project, len(data.Projects))
	copy(projects, data.Projects)
	return &Service{projects: projects}
}

// List filters by status; empty or "all" returns everything, newest first.
func (s *Service) List(status string) []data.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []data.Project
	for _, project := range s.projects {
		if status != "" && !strings.EqualFold(status, "all") &&
			!strings.EqualFold(string(project.Status), status) {
			continue
		}
		matches = append(matches, project)
	}
	return matches
}

func (s *Service) Get(id string) (data.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, project := range s.projects {
		if project.ID == id {
			return project, true
		}
	}
	return data.Project{}, false
}

// Create prepends a fresh Active project with no progress and no team yet.
func (s *Service) Create(input NewProject) (data.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return data.Project{}, errors.New("project name is required")
	}

	project := data.Project{
		ID:          "proj-" + uuid.NewString(),
		Name:        input.Name,
		Client:      input.Client,
		Description: input.Description,
		Status:      data.ProjectActive,
		Progress:    0,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		TeamIDs:     []string{},
	}

	s.mu.Lock()
	s.projects = append([]data.Project{project}, s.projects...)
	s.mu.Unlock()
	return project, nil
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats Stats
	for _, project := range s.projects {
		stats.Total++
		stats.TotalBudget += project.Budget
		switch project.Status {
		case data.ProjectActive:
			stats.Active++
		case data.ProjectCompleted:
			stats.Completed++
		}
	}
	return stats
}
