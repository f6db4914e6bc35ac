package data

import "time"

type Role string

const (
	RoleHRAdmin  Role = "HR Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

type Department string

const (
	DeptEngineering Department = "Engineering"
	DeptDesign      Department = "Design"
	DeptMarketing   Department = "Marketing"
	DeptSales       Department = "Sales"
	DeptHR          Department = "HR"
	DeptFinance     Department = "Finance"
	DeptOperations  Department = "Operations"
)

// Departments lists every department in display order.
var Departments = []Department{
	DeptEngineering, DeptDesign, DeptMarketing, DeptSales, DeptHR, DeptFinance, DeptOperations,
}

type LeaveType string

const (
	LeaveAnnual        LeaveType = "Annual"
	LeaveSick          LeaveType = "Sick"
	LeaveMaternity     LeaveType = "Maternity"
	LeavePaternity     LeaveType = "Paternity"
	LeaveUnpaid        LeaveType = "Unpaid"
	LeaveCompassionate LeaveType = "Compassionate"
)

var LeaveTypes = []LeaveType{
	LeaveAnnual, LeaveSick, LeaveMaternity, LeavePaternity, LeaveUnpaid, LeaveCompassionate,
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "Active"
	StatusOnLeave  EmployeeStatus = "On Leave"
	StatusInactive EmployeeStatus = "Inactive"
)

type PayrollStatus string

const (
	PayrollPaid       PayrollStatus = "Paid"
	PayrollPending    PayrollStatus = "Pending"
	PayrollProcessing PayrollStatus = "Processing"
)

type Rating string

const (
	RatingExceptional      Rating = "Exceptional"
	RatingExceeds          Rating = "Exceeds"
	RatingMeets            Rating = "Meets"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingUnsatisfactory   Rating = "Unsatisfactory"
)

type GoalStatus string

const (
	GoalNotStarted GoalStatus = "Not Started"
	GoalInProgress GoalStatus = "In Progress"
	GoalCompleted  GoalStatus = "Completed"
	GoalAtRisk     GoalStatus = "At Risk"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "Active"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectAtRisk    ProjectStatus = "At Risk"
)

type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Role       Role           `json:"role"`
	Department Department     `json:"department"`
	JobTitle   string         `json:"jobTitle"`
	ManagerID  string         `json:"managerId,omitempty"`
	StartDate  string         `json:"startDate"`
	Salary     float64        `json:"salary"`
	Avatar     string         `json:"avatar"`
	Status     EmployeeStatus `json:"status"`
	Skills     []string       `json:"skills"`
	Bio        string         `json:"bio"`
}

type LeaveRequest struct {
	ID          string      `json:"id"`
	EmployeeID  string      `json:"employeeId"`
	Type        LeaveType   `json:"type"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Days        int         `json:"days"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
	ApproverID  string      `json:"approverId,omitempty"`
	AppliedDate string      `json:"appliedDate"`
}

type LeaveBalance struct {
	EmployeeID    string `json:"employeeId"`
	Annual        int    `json:"annual"`
	Sick          int    `json:"sick"`
	Maternity     int    `json:"maternity"`
	Paternity     int    `json:"paternity"`
	Unpaid        int    `json:"unpaid"`
	Compassionate int    `json:"compassionate"`
}

type PayrollRecord struct {
	ID          string        `json:"id"`
	EmployeeID  string        `json:"employeeId"`
	Month       string        `json:"month"`
	Year        int           `json:"year"`
	BasicSalary float64       `json:"basicSalary"`
	Allowances  float64       `json:"allowances"`
	Deductions  float64       `json:"deductions"`
	Tax         float64       `json:"tax"`
	NetPay      float64       `json:"netPay"`
	Status      PayrollStatus `json:"status"`
}

type PerformanceRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	ReviewerID string `json:"reviewerId"`
	Period     string `json:"period"`
	KPIScore   int    `json:"kpiScore"`
	Rating     Rating `json:"rating"`
	Goals      []Goal `json:"goals"`
	Feedback   string `json:"feedback"`
	ReviewDate string `json:"reviewDate"`
}

type Goal struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"`
	DueDate     string     `json:"dueDate"`
	Status      GoalStatus `json:"status"`
}

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Client      string        `json:"client"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	StartDate   string        `json:"startDate"`
	EndDate     string        `json:"endDate"`
	Budget      float64       `json:"budget"`
	TeamIDs     []string      `json:"teamIds"`
}

type KPI struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

type TrendPoint struct {
	Month string `json:"month"`
	Score int    `json:"score"`
}

type DepartmentScore struct {
	Department Department `json:"department"`
	Score      int        `json:"score"`
}

// ReferenceDate anchors the demo dataset. Payroll fixtures and the default
// leave-calendar month are derived from it instead of the wall clock so the
// bundled data stays internally consistent.
var ReferenceDate = time.Date(2026, time.February, 23, 0, 0, 0, 0, time.UTC)
