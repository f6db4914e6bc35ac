package data

import (
	"fmt"
	"math"
	"time"
)

// Demo payroll rates applied to the monthly basic salary.
const (
	AllowanceRate = 0.15
	DeductionRate = 0.05
	TaxRate       = 0.22
)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English month name for a 0-based month index.
func MonthName(index int) string {
	return monthNames[((index%12)+12)%12]
}

// GeneratePayrollRecord derives a demo payroll record from an annual salary.
// Each component is rounded to whole currency units independently and net pay
// is rounded from the unrounded sum, so the stored net may differ by up to one
// unit from recomputing over the stored components.
func GeneratePayrollRecord(emp Employee, month string, year int, status PayrollStatus, suffix string) PayrollRecord {
	basic := emp.Salary / 12
	allowances := basic * AllowanceRate
	deductions := basic * DeductionRate
	tax := basic * TaxRate
	net := basic + allowances - deductions - tax

	return PayrollRecord{
		ID:          fmt.Sprintf("pay-%s-%s", emp.ID, suffix),
		EmployeeID:  emp.ID,
		Month:       month,
		Year:        year,
		BasicSalary: math.Round(basic),
		Allowances:  math.Round(allowances),
		Deductions:  math.Round(deductions),
		Tax:         math.Round(tax),
		NetPay:      math.Round(net),
		Status:      status,
	}
}

// PayrollRecords covers the two months preceding the reference date for every
// employee: the most recent one Paid, the older one Pending.
var PayrollRecords = buildPayrollRecords(ReferenceDate)

func buildPayrollRecords(ref time.Time) []PayrollRecord {
	records := make([]PayrollRecord, 0, len(Employees)*2)
	for _, emp := range Employees {
		for i, offset := range []int{1, 2} {
			monthIndex := (int(ref.Month()) - 1 - offset + 12) % 12
			status := PayrollPaid
			if i > 0 {
				status = PayrollPending
			}
			records = append(records, GeneratePayrollRecord(
				emp, MonthName(monthIndex), ref.Year(), status, fmt.Sprintf("%d", offset)))
		}
	}
	return records
}
