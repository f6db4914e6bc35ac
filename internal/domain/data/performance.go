package data

var PerformanceRecords = []PerformanceRecord{
	{
		ID:         "perf-001",
		EmployeeID: "emp-003",
		ReviewerID: "emp-002",
		Period:     "Q4 2025",
		KPIScore:   92,
		Rating:     RatingExceptional,
		Goals: []Goal{
			{ID: "g1", Title: "Migrate Auth Service", Description: "Move to OAuth 2.0", Progress: 100, DueDate: "2025-12-31", Status: GoalCompleted},
			{ID: "g2", Title: "Reduce API Latency", Description: "Below 200ms p95", Progress: 85, DueDate: "2025-12-31", Status: GoalInProgress},
		},
		Feedback:   "Priya consistently delivers high-quality work and demonstrates strong leadership potential.",
		ReviewDate: "2026-01-10",
	},
	{
		ID:         "perf-002",
		EmployeeID: "emp-004",
		ReviewerID: "emp-002",
		Period:     "Q4 2025",
		KPIScore:   88,
		Rating:     RatingExceeds,
		Goals: []Goal{
			{ID: "g3", Title: "Design System v2", Description: "Ship updated component library", Progress: 100, DueDate: "2025-12-31", Status: GoalCompleted},
			{ID: "g4", Title: "Mobile Responsiveness", Description: "All pages mobile-ready", Progress: 70, DueDate: "2025-12-31", Status: GoalAtRisk},
		},
		Feedback:   "Marcus delivered an excellent design system overhaul. Mobile work needs follow-through.",
		ReviewDate: "2026-01-11",
	},
	{
		ID:         "perf-003",
		EmployeeID: "emp-006",
		ReviewerID: "emp-005",
		Period:     "Q4 2025",
		KPIScore:   75,
		Rating:     RatingMeets,
		Goals: []Goal{
			{ID: "g5", Title: "Content Calendar", Description: "8 weeks of scheduled content", Progress: 100, DueDate: "2025-12-31", Status: GoalCompleted},
			{ID: "g6", Title: "SEO Traffic Growth", Description: "+25% organic traffic", Progress: 60, DueDate: "2025-12-31", Status: GoalInProgress},
		},
		Feedback:   "David met core targets. Encourage taking initiative on organic growth strategies.",
		ReviewDate: "2026-01-12",
	},
	{
		ID:         "perf-004",
		EmployeeID: "emp-007",
		ReviewerID: "emp-001",
		Period:     "Q4 2025",
		KPIScore:   95,
		Rating:     RatingExceptional,
		Goals: []Goal{
			{ID: "g7", Title: "Budget Variance Report", Description: "Monthly automation", Progress: 100, DueDate: "2025-12-31", Status: GoalCompleted},
			{ID: "g8", Title: "Cost Reduction", Description: "Identify 3% savings", Progress: 100, DueDate: "2025-12-31", Status: GoalCompleted},
		},
		Feedback:   "Lena has been outstanding this quarter. Her financial models drove key strategic decisions.",
		ReviewDate: "2026-01-13",
	},
	{
		ID:         "perf-005",
		EmployeeID: "emp-008",
		ReviewerID: "emp-001",
		Period:     "Q4 2025",
		KPIScore:   81,
		Rating:     RatingExceeds,
		Goals: []Goal{
			{ID: "g9", Title: "Q4 Sales Quota", Description: "$500K ARR", Progress: 96, DueDate: "2025-12-31", Status: GoalCompleted},
			{ID: "g10", Title: "Enterprise Pipeline", Description: "5 qualified opportunities", Progress: 80, DueDate: "2025-12-31", Status: GoalInProgress},
		},
		Feedback:   "Raj hit quota and is building a solid enterprise pipeline. Keep momentum.",
		ReviewDate: "2026-01-14",
	},
}

// The three chart datasets below are authored constants, not aggregations of
// PerformanceRecords. They are maintained by hand and may drift from the
// per-employee records; consumers must not assume they reconcile.

var TeamKPIs = []KPI{
	{Name: "Avg Performance Score", Value: 86.2, Target: 80, Unit: "pts"},
	{Name: "Goals Completed", Value: 73, Target: 70, Unit: "%"},
	{Name: "Leave Utilization", Value: 62, Target: 65, Unit: "%"},
	{Name: "Employee Satisfaction", Value: 4.2, Target: 4.0, Unit: "/5"},
}

var PerformanceTrend = []TrendPoint{
	{Month: "Aug", Score: 78},
	{Month: "Sep", Score: 81},
	{Month: "Oct", Score: 79},
	{Month: "Nov", Score: 84},
	{Month: "Dec", Score: 88},
	{Month: "Jan", Score: 86},
}

var DepartmentPerformance = []DepartmentScore{
	{Department: DeptEngineering, Score: 90},
	{Department: DeptFinance, Score: 95},
	{Department: DeptSales, Score: 81},
	{Department: DeptDesign, Score: 88},
	{Department: DeptMarketing, Score: 75},
	{Department: DeptHR, Score: 89},
}
