package data

// Employee returns the unique record with the given id. Linear scan; the
// dataset stays well under a size where indexing would pay off.
func EmployeeByID(id string) (Employee, bool) {
	for _, emp := range Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return Employee{}, false
}

func EmployeeByEmail(email string) (Employee, bool) {
	for _, emp := range Employees {
		if emp.Email == email {
			return emp, true
		}
	}
	return Employee{}, false
}

func LeaveBalanceFor(employeeID string) (LeaveBalance, bool) {
	for _, balance := range LeaveBalances {
		if balance.EmployeeID == employeeID {
			return balance, true
		}
	}
	return LeaveBalance{}, false
}

// EmployeeLeaves returns the employee's leave requests in source order.
func EmployeeLeaves(employeeID string) []LeaveRequest {
	var matches []LeaveRequest
	for _, request := range LeaveRequests {
		if request.EmployeeID == employeeID {
			matches = append(matches, request)
		}
	}
	return matches
}

func EmployeePayroll(employeeID string) []PayrollRecord {
	var matches []PayrollRecord
	for _, record := range PayrollRecords {
		if record.EmployeeID == employeeID {
			matches = append(matches, record)
		}
	}
	return matches
}

func EmployeePerformance(employeeID string) []PerformanceRecord {
	var matches []PerformanceRecord
	for _, record := range PerformanceRecords {
		if record.EmployeeID == employeeID {
			matches = append(matches, record)
		}
	}
	return matches
}

// DirectReports returns employees whose manager is the given employee.
func DirectReports(employeeID string) []Employee {
	var reports []Employee
	for _, emp := range Employees {
		if emp.ManagerID == employeeID {
			reports = append(reports, emp)
		}
	}
	return reports
}
