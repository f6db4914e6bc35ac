package performance

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrx/internal/domain/data"
)

var ErrNotFound = errors.New("performance record not found")

type Notifier interface {
	Add(message string)
}

type ScoreBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type GoalCounters struct {
	InProgress int `json:"inProgress"`
	AtRisk     int `json:"atRisk"`
	Completed  int `json:"completed"`
}

type Service struct {
	mu       sync.Mutex
	records  []data.PerformanceRecord
	notifier Notifier

	Now func() time.Time
}

func NewService(notifier Notifier) *Service {
	records := make([]data.PerformanceRecord, len(data.PerformanceRecords))
	for i, record := range data.PerformanceRecords {
		records[i] = record
		records[i].Goals = append([]data.Goal(nil), record.Goals...)
	}
	return &Service{records: records, notifier: notifier, Now: time.Now}
}

// List returns records for a review period; empty or "All" wildcards.
func (s *Service) List(period string) []data.PerformanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []data.PerformanceRecord
	for _, record := range s.records {
		if period != "" && !strings.EqualFold(period, "all") && record.Period != period {
			continue
		}
		matches = append(matches, record)
	}
	return matches
}

func (s *Service) Get(id string) (data.PerformanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.records {
		if record.ID == id {
			return record, true
		}
	}
	return data.PerformanceRecord{}, false
}

// TopPerformers returns the n highest KPI scores, descending. Equal scores
// keep their list order.
func (s *Service) TopPerformers(n int) []data.PerformanceRecord {
	s.mu.Lock()
	ranked := make([]data.PerformanceRecord, len(s.records))
	copy(ranked, s.records)
	s.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].KPIScore > ranked[j].KPIScore
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// ScoreDistribution buckets records by KPI score band.
func (s *Service) ScoreDistribution() []ScoreBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	buckets := []ScoreBucket{
		{Label: "Exceptional (90-100)"},
		{Label: "Exceeds (80-89)"},
		{Label: "Meets (70-79)"},
		{Label: "Needs Improvement (<70)"},
	}
	for _, record := range s.records {
		switch {
		case record.KPIScore >= 90:
			buckets[0].Count++
		case record.KPIScore >= 80:
			buckets[1].Count++
		case record.KPIScore >= 70:
			buckets[2].Count++
		default:
			buckets[3].Count++
		}
	}
	return buckets
}

// CountGoals tallies goal statuses across all records.
func (s *Service) CountGoals() GoalCounters {
	s.mu.Lock()
	defer s.mu.Unlock()

	var counters GoalCounters
	for _, record := range s.records {
		for _, goal := range record.Goals {
			switch goal.Status {
			case data.GoalInProgress:
				counters.InProgress++
			case data.GoalAtRisk:
				counters.AtRisk++
			case data.GoalCompleted:
				counters.Completed++
			}
		}
	}
	return counters
}

// AverageScore returns the mean KPI score rounded to the nearest point.
func (s *Service) AverageScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return 0
	}
	sum := 0
	for _, record := range s.records {
		sum += record.KPIScore
	}
	return (sum + len(s.records)/2) / len(s.records)
}

// AddGoal attaches a Not Started goal to the employee's most recent record,
// creating a record shell for the period when none exists, and emits one
// notification.
func (s *Service) AddGoal(employeeID, title, description, period, dueDate string) (data.Goal, error) {
	emp, ok := data.EmployeeByID(employeeID)
	if !ok {
		return data.Goal{}, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
	}
	if title == "" {
		title = "Untitled"
	}

	goal := data.Goal{
		ID:          "g-" + uuid.NewString(),
		Title:       title,
		Description: description,
		Progress:    0,
		DueDate:     dueDate,
		Status:      data.GoalNotStarted,
	}

	s.mu.Lock()
	attached := false
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].EmployeeID == employeeID {
			s.records[i].Goals = append(s.records[i].Goals, goal)
			attached = true
			break
		}
	}
	if !attached {
		s.records = append(s.records, data.PerformanceRecord{
			ID:         "perf-" + uuid.NewString(),
			EmployeeID: employeeID,
			Period:     period,
			Goals:      []data.Goal{goal},
			ReviewDate: s.Now().UTC().Format("2006-01-02"),
		})
	}
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Add(fmt.Sprintf("New goal %q set for %s", title, emp.Name))
	}
	return goal, nil
}
