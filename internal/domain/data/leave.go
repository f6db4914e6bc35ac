package data

var LeaveRequests = []LeaveRequest{
	{
		ID:          "lv-001",
		EmployeeID:  "emp-003",
		Type:        LeaveAnnual,
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-14",
		Days:        5,
		Reason:      "Family vacation to Japan",
		Status:      LeavePending,
		ApproverID:  "emp-002",
		AppliedDate: "2026-02-20",
	},
	{
		ID:          "lv-002",
		EmployeeID:  "emp-006",
		Type:        LeaveSick,
		StartDate:   "2026-02-17",
		EndDate:     "2026-02-21",
		Days:        5,
		Reason:      "Medical procedure recovery",
		Status:      LeaveApproved,
		ApproverID:  "emp-005",
		AppliedDate: "2026-02-15",
	},
	{
		ID:          "lv-003",
		EmployeeID:  "emp-004",
		Type:        LeaveAnnual,
		StartDate:   "2026-02-26",
		EndDate:     "2026-02-27",
		Days:        2,
		Reason:      "Personal matters",
		Status:      LeaveApproved,
		ApproverID:  "emp-002",
		AppliedDate: "2026-02-18",
	},
	{
		ID:          "lv-004",
		EmployeeID:  "emp-008",
		Type:        LeaveAnnual,
		StartDate:   "2026-03-20",
		EndDate:     "2026-03-24",
		Days:        5,
		Reason:      "Travel",
		Status:      LeavePending,
		ApproverID:  "emp-001",
		AppliedDate: "2026-02-22",
	},
	{
		ID:          "lv-005",
		EmployeeID:  "emp-007",
		Type:        LeaveSick,
		StartDate:   "2026-01-08",
		EndDate:     "2026-01-09",
		Days:        2,
		Reason:      "Flu",
		Status:      LeaveApproved,
		ApproverID:  "emp-001",
		AppliedDate: "2026-01-08",
	},
	{
		ID:          "lv-006",
		EmployeeID:  "emp-003",
		Type:        LeaveAnnual,
		StartDate:   "2026-01-20",
		EndDate:     "2026-01-22",
		Days:        3,
		Reason:      "Extended weekend",
		Status:      LeaveRejected,
		ApproverID:  "emp-002",
		AppliedDate: "2026-01-15",
	},
}

// LeaveBalances holds fixed per-employee counters. Annual and sick vary per
// employee within the 10-19 and 5-9 day bands; the statutory types are flat.
var LeaveBalances = buildLeaveBalances()

func buildLeaveBalances() []LeaveBalance {
	annual := []int{14, 18, 12, 16, 11, 19, 13, 17}
	sick := []int{7, 9, 5, 8, 6, 9, 7, 5}

	balances := make([]LeaveBalance, 0, len(Employees))
	for i, emp := range Employees {
		balances = append(balances, LeaveBalance{
			EmployeeID:    emp.ID,
			Annual:        annual[i%len(annual)],
			Sick:          sick[i%len(sick)],
			Maternity:     90,
			Paternity:     14,
			Unpaid:        30,
			Compassionate: 5,
		})
	}
	return balances
}
