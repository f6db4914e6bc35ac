package directory

import (
	"strings"
	"testing"

	"hrx/internal/domain/data"
)

func TestListNoFilterReturnsEveryone(t *testing.T) {
	svc := NewService()
	got := svc.List(Filter{})
	if len(got) != len(data.Employees) {
		t.Fatalf("expected %d employees, got %d", len(data.Employees), len(got))
	}
}

func TestListConjunctiveFilter(t *testing.T) {
	svc := NewService()

	got := svc.List(Filter{Department: "Engineering", Role: "Manager"})
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
	if got[0].Name != "James Okafor" {
		t.Fatalf("expected James Okafor, got %s", got[0].Name)
	}
}

func TestListQueryMatchesNameEmailAndTitle(t *testing.T) {
	svc := NewService()

	cases := []struct {
		query string
		want  string
	}{
		{"priya", "emp-003"},
		{"MULLER", "emp-007"},
		{"account executive", "emp-008"},
	}
	for _, tc := range cases {
		got := svc.List(Filter{Query: tc.query})
		if len(got) != 1 || got[0].ID != tc.want {
			t.Fatalf("query %q: expected only %s, got %v", tc.query, tc.want, got)
		}
	}
}

func TestListAllWildcards(t *testing.T) {
	svc := NewService()
	got := svc.List(Filter{Department: "all", Role: "All"})
	if len(got) != len(data.Employees) {
		t.Fatalf("wildcard filter should return everyone, got %d", len(got))
	}
}

func TestGetProfileResolvesManagerAndReports(t *testing.T) {
	svc := NewService()

	profile, err := svc.GetProfile("emp-002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Manager == nil || profile.Manager.ID != "emp-001" {
		t.Fatalf("expected manager emp-001, got %+v", profile.Manager)
	}
	if len(profile.Reports) != 2 {
		t.Fatalf("expected 2 direct reports, got %d", len(profile.Reports))
	}
	if profile.Reports[0].ID != "emp-003" || profile.Reports[1].ID != "emp-004" {
		t.Fatalf("reports out of source order: %v", profile.Reports)
	}
}

func TestGetProfileUnknownID(t *testing.T) {
	svc := NewService()
	if _, err := svc.GetProfile("emp-999"); err == nil {
		t.Fatal("expected an error for an unknown employee")
	}
}

func TestAddEmployee(t *testing.T) {
	svc := NewService()
	before := svc.Count()

	emp, err := svc.Add(NewEmployee{
		Name:       "Nora Quinn",
		Email:      "nora.quinn@hrx.com",
		Department: data.DeptEngineering,
		JobTitle:   "Platform Engineer",
		Salary:     108000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.Status != data.StatusActive {
		t.Fatalf("new hires must start Active, got %s", emp.Status)
	}
	if emp.Role != data.RoleEmployee {
		t.Fatalf("role should default to Employee, got %s", emp.Role)
	}
	if emp.Avatar != "NQ" {
		t.Fatalf("expected initials NQ, got %q", emp.Avatar)
	}
	if !strings.HasPrefix(emp.ID, "emp-") {
		t.Fatalf("expected generated emp- id, got %q", emp.ID)
	}
	if svc.Count() != before+1 {
		t.Fatalf("expected count %d, got %d", before+1, svc.Count())
	}
}

func TestAddEmployeeRequiresName(t *testing.T) {
	svc := NewService()
	if _, err := svc.Add(NewEmployee{Email: "x@hrx.com"}); err == nil {
		t.Fatal("expected an error for a blank name")
	}
}
