package data

import (
	"math"
	"testing"
	"time"
)

func TestGeneratePayrollRecordComponents(t *testing.T) {
	emp := Employee{ID: "emp-003", Salary: 115000}
	record := GeneratePayrollRecord(emp, "January", 2026, PayrollPaid, "1")

	if record.BasicSalary != 9583 {
		t.Fatalf("expected basic 9583, got %v", record.BasicSalary)
	}
	if record.Allowances != 1438 {
		t.Fatalf("expected allowances 1438, got %v", record.Allowances)
	}
	if record.Deductions != 479 {
		t.Fatalf("expected deductions 479, got %v", record.Deductions)
	}
	if record.Tax != 2108 {
		t.Fatalf("expected tax 2108, got %v", record.Tax)
	}
	// Net is rounded from the unrounded sum, not from the rounded components.
	if record.NetPay != 8433 {
		t.Fatalf("expected net 8433, got %v", record.NetPay)
	}
}

func TestNetPayRoundingWithinOneUnit(t *testing.T) {
	for _, emp := range Employees {
		record := GeneratePayrollRecord(emp, "January", 2026, PayrollPaid, "1")

		unrounded := emp.Salary / 12 * (1 + AllowanceRate - DeductionRate - TaxRate)
		if record.NetPay != math.Round(unrounded) {
			t.Fatalf("%s: net %v does not round the unrounded sum %v", emp.ID, record.NetPay, unrounded)
		}

		fromComponents := record.BasicSalary + record.Allowances - record.Deductions - record.Tax
		if diff := math.Abs(fromComponents - record.NetPay); diff > 1 {
			t.Fatalf("%s: component sum %v deviates from net %v by more than one unit", emp.ID, fromComponents, record.NetPay)
		}
	}
}

func TestBuildPayrollRecordsAnchorsToReference(t *testing.T) {
	ref := time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC)
	records := buildPayrollRecords(ref)

	if len(records) != len(Employees)*2 {
		t.Fatalf("expected %d records, got %d", len(Employees)*2, len(records))
	}
	if records[0].Month != "January" || records[0].Year != 2026 {
		t.Fatalf("expected first record for January 2026, got %s %d", records[0].Month, records[0].Year)
	}
	if records[1].Month != "December" {
		t.Fatalf("expected second record for December, got %s", records[1].Month)
	}
}
