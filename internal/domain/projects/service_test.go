package projects

import (
	"testing"

	"hrx/internal/domain/data"
)

func TestListByStatus(t *testing.T) {
	svc := NewService()

	if got := svc.List(""); len(got) != 5 {
		t.Fatalf("expected 5 projects, got %d", len(got))
	}
	if got := svc.List("all"); len(got) != 5 {
		t.Fatalf("wildcard should return all projects, got %d", len(got))
	}
	if got := svc.List("active"); len(got) != 2 {
		t.Fatalf("expected 2 active projects, got %d", len(got))
	}
	got := svc.List("At Risk")
	if len(got) != 1 || got[0].ID != "proj-002" {
		t.Fatalf("expected only proj-002 at risk, got %v", got)
	}
}

func TestCreatePrependsActiveProject(t *testing.T) {
	svc := NewService()

	project, err := svc.Create(NewProject{
		Name:      "Warehouse Sync",
		Client:    "Vantage Logistics",
		StartDate: "2026-03-01",
		EndDate:   "2026-08-31",
		Budget:    140000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project.Status != data.ProjectActive {
		t.Fatalf("new projects must start Active, got %s", project.Status)
	}
	if project.Progress != 0 {
		t.Fatalf("new projects must start at 0%% progress, got %d", project.Progress)
	}
	if len(project.TeamIDs) != 0 {
		t.Fatalf("new projects must start with an empty team, got %v", project.TeamIDs)
	}

	all := svc.List("")
	if all[0].ID != project.ID {
		t.Fatalf("expected the new project first, got %s", all[0].ID)
	}
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService()
	if _, err := svc.Create(NewProject{Client: "Finch Bank"}); err == nil {
		t.Fatal("expected an error for a blank name")
	}
}

func TestStats(t *testing.T) {
	svc := NewService()

	stats := svc.Stats()
	if stats.Total != 5 || stats.Active != 2 || stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TotalBudget != 705000 {
		t.Fatalf("expected total budget 705000, got %v", stats.TotalBudget)
	}
}
