package data

import "testing"

func TestEmployeeByIDUnique(t *testing.T) {
	for _, emp := range Employees {
		found, ok := EmployeeByID(emp.ID)
		if !ok {
			t.Fatalf("expected %s to resolve", emp.ID)
		}
		if found.Name != emp.Name {
			t.Fatalf("expected %s, got %s", emp.Name, found.Name)
		}
	}

	seen := map[string]bool{}
	for _, emp := range Employees {
		if seen[emp.ID] {
			t.Fatalf("duplicate employee id %s", emp.ID)
		}
		seen[emp.ID] = true
	}
}

func TestEmployeeByIDAbsent(t *testing.T) {
	if _, ok := EmployeeByID("emp-999"); ok {
		t.Fatal("expected no match for unknown id")
	}
	if _, ok := EmployeeByID(""); ok {
		t.Fatal("expected no match for empty id")
	}
}

func TestManagerReferencesResolve(t *testing.T) {
	for _, emp := range Employees {
		if emp.ManagerID == "" {
			continue
		}
		if _, ok := EmployeeByID(emp.ManagerID); !ok {
			t.Fatalf("employee %s references missing manager %s", emp.ID, emp.ManagerID)
		}
	}
}

func TestEmployeeLeavesPreservesOrder(t *testing.T) {
	leaves := EmployeeLeaves("emp-003")
	if len(leaves) != 2 {
		t.Fatalf("expected 2 leave requests for emp-003, got %d", len(leaves))
	}
	if leaves[0].ID != "lv-001" || leaves[1].ID != "lv-006" {
		t.Fatalf("expected source order lv-001, lv-006, got %s, %s", leaves[0].ID, leaves[1].ID)
	}
}

func TestEmployeePayrollTwoMonthsEach(t *testing.T) {
	for _, emp := range Employees {
		records := EmployeePayroll(emp.ID)
		if len(records) != 2 {
			t.Fatalf("expected 2 payroll records for %s, got %d", emp.ID, len(records))
		}
		if records[0].Status != PayrollPaid || records[1].Status != PayrollPending {
			t.Fatalf("expected Paid then Pending for %s, got %s, %s", emp.ID, records[0].Status, records[1].Status)
		}
	}
}

func TestDirectReports(t *testing.T) {
	reports := DirectReports("emp-002")
	if len(reports) != 2 {
		t.Fatalf("expected 2 direct reports for emp-002, got %d", len(reports))
	}
}

func TestLeaveBalancePerEmployee(t *testing.T) {
	for _, emp := range Employees {
		balance, ok := LeaveBalanceFor(emp.ID)
		if !ok {
			t.Fatalf("expected balance for %s", emp.ID)
		}
		if balance.Annual < 10 || balance.Annual > 19 {
			t.Fatalf("annual balance for %s out of band: %d", emp.ID, balance.Annual)
		}
		if balance.Maternity != 90 || balance.Paternity != 14 {
			t.Fatalf("statutory balances wrong for %s: %+v", emp.ID, balance)
		}
	}
}
