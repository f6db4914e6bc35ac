package reports

import (
	"testing"

	"hrx/internal/domain/data"
)

func TestHeadcountByDepartment(t *testing.T) {
	got := HeadcountByDepartment()

	want := map[data.Department]int{
		data.DeptEngineering: 2,
		data.DeptDesign:      1,
		data.DeptMarketing:   2,
		data.DeptSales:       1,
		data.DeptHR:          1,
		data.DeptFinance:     1,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d departments, got %d", len(want), len(got))
	}
	for _, entry := range got {
		if entry.Department == data.DeptOperations {
			t.Fatal("empty departments must be dropped")
		}
		if want[entry.Department] != entry.Count {
			t.Fatalf("%s: expected %d, got %d", entry.Department, want[entry.Department], entry.Count)
		}
	}
}

func TestLeaveByTypeDropsUnusedTypes(t *testing.T) {
	got := LeaveByType()
	if len(got) != 2 {
		t.Fatalf("expected 2 leave types in use, got %d", len(got))
	}
	if got[0].Type != data.LeaveAnnual || got[0].Count != 4 {
		t.Fatalf("expected 4 annual requests, got %+v", got[0])
	}
	if got[1].Type != data.LeaveSick || got[1].Count != 2 {
		t.Fatalf("expected 2 sick requests, got %+v", got[1])
	}
}

func TestSalaryByDepartmentWholeThousands(t *testing.T) {
	got := SalaryByDepartment()

	want := map[data.Department]int{
		data.DeptEngineering: 22, // 260000/12 = 21667
		data.DeptDesign:      8,
		data.DeptMarketing:   15,
		data.DeptSales:       7,
		data.DeptHR:          10,
		data.DeptFinance:     8,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d departments, got %d", len(want), len(got))
	}
	for _, entry := range got {
		if want[entry.Department] != entry.MonthlyThousands {
			t.Fatalf("%s: expected %dk, got %dk", entry.Department, want[entry.Department], entry.MonthlyThousands)
		}
	}
}

func TestLeaveStatusBreakdown(t *testing.T) {
	got := LeaveStatusBreakdown()
	if len(got) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(got))
	}
	if got[0].Status != data.LeavePending || got[0].Count != 2 || got[0].Percent != 33 {
		t.Fatalf("unexpected pending share: %+v", got[0])
	}
	if got[1].Status != data.LeaveApproved || got[1].Count != 3 || got[1].Percent != 50 {
		t.Fatalf("unexpected approved share: %+v", got[1])
	}
	if got[2].Status != data.LeaveRejected || got[2].Count != 1 || got[2].Percent != 17 {
		t.Fatalf("unexpected rejected share: %+v", got[2])
	}
}

func TestWorkforceBreakdowns(t *testing.T) {
	roles := WorkforceByRole()
	if roles[0].Count != 1 || roles[1].Count != 2 || roles[2].Count != 5 {
		t.Fatalf("unexpected role tallies: %+v", roles)
	}

	statuses := WorkforceByStatus()
	if statuses[0].Count != 7 || statuses[1].Count != 1 || statuses[2].Count != 0 {
		t.Fatalf("unexpected status tallies: %+v", statuses)
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize()
	if summary.Headcount != 8 {
		t.Fatalf("expected headcount 8, got %d", summary.Headcount)
	}
	if summary.AverageSalary != 104750 {
		t.Fatalf("expected average salary 104750, got %v", summary.AverageSalary)
	}
	if summary.ApprovedLeaveDays != 9 {
		t.Fatalf("expected 9 approved leave days, got %d", summary.ApprovedLeaveDays)
	}

	var wantJanuary float64
	for _, record := range data.PayrollRecords {
		if record.Month == "January" {
			wantJanuary += record.NetPay
		}
	}
	if wantJanuary == 0 {
		t.Fatal("fixture payroll must include a January run")
	}
	if summary.JanuaryNetPay != wantJanuary {
		t.Fatalf("expected January net pay %v, got %v", wantJanuary, summary.JanuaryNetPay)
	}
}
