package performance

import (
	"strings"
	"testing"

	"hrx/internal/domain/data"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Add(message string) {
	r.messages = append(r.messages, message)
}

func TestListByPeriod(t *testing.T) {
	service := NewService(nil)

	if got := len(service.List("All")); got != 5 {
		t.Fatalf("expected 5 records for All, got %d", got)
	}
	if got := len(service.List("Q4 2025")); got != 5 {
		t.Fatalf("expected 5 records for Q4 2025, got %d", got)
	}
	if got := len(service.List("Q1 2026")); got != 0 {
		t.Fatalf("expected no records for Q1 2026, got %d", got)
	}
}

func TestTopPerformers(t *testing.T) {
	service := NewService(nil)
	top := service.TopPerformers(3)

	if len(top) != 3 {
		t.Fatalf("expected 3 top performers, got %d", len(top))
	}
	if top[0].EmployeeID != "emp-007" || top[0].KPIScore != 95 {
		t.Fatalf("expected emp-007 (95) first, got %s (%d)", top[0].EmployeeID, top[0].KPIScore)
	}
	if top[1].KPIScore != 92 || top[2].KPIScore != 88 {
		t.Fatalf("expected descending scores, got %d, %d", top[1].KPIScore, top[2].KPIScore)
	}
}

func TestScoreDistribution(t *testing.T) {
	service := NewService(nil)
	buckets := service.ScoreDistribution()

	// Fixture scores: 92, 88, 75, 95, 81.
	want := []int{2, 2, 1, 0}
	for i, bucket := range buckets {
		if bucket.Count != want[i] {
			t.Fatalf("bucket %s: expected %d, got %d", bucket.Label, want[i], bucket.Count)
		}
	}
}

func TestCountGoals(t *testing.T) {
	service := NewService(nil)
	counters := service.CountGoals()

	if counters.InProgress != 3 {
		t.Fatalf("expected 3 in-progress goals, got %d", counters.InProgress)
	}
	if counters.AtRisk != 1 {
		t.Fatalf("expected 1 at-risk goal, got %d", counters.AtRisk)
	}
	if counters.Completed != 6 {
		t.Fatalf("expected 6 completed goals, got %d", counters.Completed)
	}
}

func TestAverageScore(t *testing.T) {
	service := NewService(nil)
	if got := service.AverageScore(); got != 86 {
		t.Fatalf("expected average 86, got %d", got)
	}
}

func TestAddGoalAttachesToLatestRecord(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewService(notifier)

	goal, err := service.AddGoal("emp-003", "Ship search rewrite", "Replace legacy query layer", "Q1 2026", "2026-03-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Status != data.GoalNotStarted || goal.Progress != 0 {
		t.Fatalf("expected fresh goal, got %+v", goal)
	}

	records := service.List("")
	found := false
	for _, record := range records {
		if record.EmployeeID != "emp-003" {
			continue
		}
		for _, g := range record.Goals {
			if g.ID == goal.ID {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("goal not attached to an emp-003 record")
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.messages))
	}
	if !strings.Contains(notifier.messages[0], "Priya Sharma") || !strings.Contains(notifier.messages[0], "Ship search rewrite") {
		t.Fatalf("unexpected notification %q", notifier.messages[0])
	}
}

func TestAddGoalCreatesShellForNewReviewee(t *testing.T) {
	service := NewService(nil)

	// emp-005 has no review record in the fixtures.
	if _, err := service.AddGoal("emp-005", "", "", "Q1 2026", "2026-06-30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := service.List("Q1 2026")
	if len(records) != 1 || records[0].EmployeeID != "emp-005" {
		t.Fatalf("expected a new Q1 2026 shell for emp-005, got %+v", records)
	}
	if records[0].Goals[0].Title != "Untitled" {
		t.Fatalf("expected Untitled fallback, got %q", records[0].Goals[0].Title)
	}
}

func TestAddGoalUnknownEmployee(t *testing.T) {
	service := NewService(nil)
	if _, err := service.AddGoal("emp-999", "x", "", "", ""); err == nil {
		t.Fatal("expected error for unknown employee")
	}
}
