// Package reports computes workforce aggregations over the bundled dataset.
// Unlike the authored chart constants in the data package, everything here is
// derived, so the numbers always agree with the records they summarize.
package reports

import (
	"math"

	"hrx/internal/domain/data"
)

type DepartmentHeadcount struct {
	Department data.Department `json:"department"`
	Count      int             `json:"count"`
}

type LeaveTypeCount struct {
	Type  data.LeaveType `json:"type"`
	Count int            `json:"count"`
}

// DepartmentSalary reports the monthly salary bill per department in whole
// thousands of currency units.
type DepartmentSalary struct {
	Department       data.Department `json:"department"`
	MonthlyThousands int             `json:"monthlyThousands"`
}

type LeaveStatusShare struct {
	Status  data.LeaveStatus `json:"status"`
	Count   int              `json:"count"`
	Percent int              `json:"percent"`
}

type RoleBreakdown struct {
	Role  data.Role `json:"role"`
	Count int       `json:"count"`
}

type StatusBreakdown struct {
	Status data.EmployeeStatus `json:"status"`
	Count  int                 `json:"count"`
}

type Summary struct {
	Headcount         int     `json:"headcount"`
	JanuaryNetPay     float64 `json:"januaryNetPay"`
	AverageSalary     float64 `json:"averageSalary"`
	ApprovedLeaveDays int     `json:"approvedLeaveDays"`
}

// HeadcountByDepartment tallies employees per department in display order,
// dropping departments with nobody in them.
func HeadcountByDepartment() []DepartmentHeadcount {
	counts := make(map[data.Department]int)
	for _, emp := range data.Employees {
		counts[emp.Department]++
	}

	var out []DepartmentHeadcount
	for _, dept := range data.Departments {
		if counts[dept] == 0 {
			continue
		}
		out = append(out, DepartmentHeadcount{Department: dept, Count: counts[dept]})
	}
	return out
}

// LeaveByType tallies leave requests per type, dropping unused types.
func LeaveByType() []LeaveTypeCount {
	counts := make(map[data.LeaveType]int)
	for _, req := range data.LeaveRequests {
		counts[req.Type]++
	}

	var out []LeaveTypeCount
	for _, leaveType := range data.LeaveTypes {
		if counts[leaveType] == 0 {
			continue
		}
		out = append(out, LeaveTypeCount{Type: leaveType, Count: counts[leaveType]})
	}
	return out
}

// SalaryByDepartment sums annual salaries per department, divides by twelve
// and rounds to whole thousands for charting.
func SalaryByDepartment() []DepartmentSalary {
	sums := make(map[data.Department]float64)
	for _, emp := range data.Employees {
		sums[emp.Department] += emp.Salary
	}

	var out []DepartmentSalary
	for _, dept := range data.Departments {
		if sums[dept] == 0 {
			continue
		}
		out = append(out, DepartmentSalary{
			Department:       dept,
			MonthlyThousands: int(math.Round(sums[dept] / 12 / 1000)),
		})
	}
	return out
}

// LeaveStatusBreakdown reports each status with its rounded share of all
// requests. Shares are rounded independently and may not sum to exactly 100.
func LeaveStatusBreakdown() []LeaveStatusShare {
	counts := make(map[data.LeaveStatus]int)
	for _, req := range data.LeaveRequests {
		counts[req.Status]++
	}

	total := len(data.LeaveRequests)
	statuses := []data.LeaveStatus{data.LeavePending, data.LeaveApproved, data.LeaveRejected}

	out := make([]LeaveStatusShare, 0, len(statuses))
	for _, status := range statuses {
		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(counts[status]) / float64(total) * 100))
		}
		out = append(out, LeaveStatusShare{Status: status, Count: counts[status], Percent: percent})
	}
	return out
}

func WorkforceByRole() []RoleBreakdown {
	counts := make(map[data.Role]int)
	for _, emp := range data.Employees {
		counts[emp.Role]++
	}

	roles := []data.Role{data.RoleHRAdmin, data.RoleManager, data.RoleEmployee}
	out := make([]RoleBreakdown, 0, len(roles))
	for _, role := range roles {
		out = append(out, RoleBreakdown{Role: role, Count: counts[role]})
	}
	return out
}

func WorkforceByStatus() []StatusBreakdown {
	counts := make(map[data.EmployeeStatus]int)
	for _, emp := range data.Employees {
		counts[emp.Status]++
	}

	statuses := []data.EmployeeStatus{data.StatusActive, data.StatusOnLeave, data.StatusInactive}
	out := make([]StatusBreakdown, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, StatusBreakdown{Status: status, Count: counts[status]})
	}
	return out
}

// Summarize rolls up the headline numbers: headcount, the January payroll net
// total, average annual salary and the days consumed by approved leave.
func Summarize() Summary {
	var summary Summary
	summary.Headcount = len(data.Employees)

	var salarySum float64
	for _, emp := range data.Employees {
		salarySum += emp.Salary
	}
	if summary.Headcount > 0 {
		summary.AverageSalary = salarySum / float64(summary.Headcount)
	}

	for _, record := range data.PayrollRecords {
		if record.Month == "January" {
			summary.JanuaryNetPay += record.NetPay
		}
	}
	for _, req := range data.LeaveRequests {
		if req.Status == data.LeaveApproved {
			summary.ApprovedLeaveDays += req.Days
		}
	}
	return summary
}
