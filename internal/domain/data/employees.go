package data

// Employees is the bundled demo directory. Order matters: lookups and the
// seeder preserve it, and emp-001 acts as the signed-in user in demo flows.
var Employees = []Employee{
	{
		ID:         "emp-001",
		Name:       "Sarah Chen",
		Email:      "sarah.chen@hrx.com",
		Phone:      "+1 415-555-0101",
		Role:       RoleHRAdmin,
		Department: DeptHR,
		JobTitle:   "HR Director",
		StartDate:  "2019-03-15",
		Salary:     120000,
		Avatar:     "SC",
		Status:     StatusActive,
		Skills:     []string{"Talent Acquisition", "Compliance", "HRIS", "Employee Relations"},
		Bio:        "10+ years in HR, passionate about building great workplaces.",
	},
	{
		ID:         "emp-002",
		Name:       "James Okafor",
		Email:      "james.okafor@hrx.com",
		Phone:      "+1 415-555-0102",
		Role:       RoleManager,
		Department: DeptEngineering,
		JobTitle:   "Engineering Manager",
		ManagerID:  "emp-001",
		StartDate:  "2020-06-01",
		Salary:     145000,
		Avatar:     "JO",
		Status:     StatusActive,
		Skills:     []string{"React", "Node.js", "Team Leadership", "System Design"},
		Bio:        "Building scalable systems and high-performing teams.",
	},
	{
		ID:         "emp-003",
		Name:       "Priya Sharma",
		Email:      "priya.sharma@hrx.com",
		Phone:      "+1 415-555-0103",
		Role:       RoleEmployee,
		Department: DeptEngineering,
		JobTitle:   "Senior Software Engineer",
		ManagerID:  "emp-002",
		StartDate:  "2021-01-10",
		Salary:     115000,
		Avatar:     "PS",
		Status:     StatusActive,
		Skills:     []string{"TypeScript", "Golang", "AWS", "PostgreSQL"},
		Bio:        "Full-stack engineer who loves clean architecture.",
	},
	{
		ID:         "emp-004",
		Name:       "Marcus Webb",
		Email:      "marcus.webb@hrx.com",
		Phone:      "+1 415-555-0104",
		Role:       RoleEmployee,
		Department: DeptDesign,
		JobTitle:   "UI/UX Designer",
		ManagerID:  "emp-002",
		StartDate:  "2021-08-20",
		Salary:     98000,
		Avatar:     "MW",
		Status:     StatusActive,
		Skills:     []string{"Figma", "Design Systems", "User Research", "Prototyping"},
		Bio:        "Designing experiences that feel effortless.",
	},
	{
		ID:         "emp-005",
		Name:       "Aisha Patel",
		Email:      "aisha.patel@hrx.com",
		Phone:      "+1 415-555-0105",
		Role:       RoleManager,
		Department: DeptMarketing,
		JobTitle:   "Marketing Manager",
		ManagerID:  "emp-001",
		StartDate:  "2020-09-15",
		Salary:     105000,
		Avatar:     "AP",
		Status:     StatusActive,
		Skills:     []string{"Brand Strategy", "Content Marketing", "SEO", "Analytics"},
		Bio:        "Data-driven marketer who tells compelling brand stories.",
	},
	{
		ID:         "emp-006",
		Name:       "David Kim",
		Email:      "david.kim@hrx.com",
		Phone:      "+1 415-555-0106",
		Role:       RoleEmployee,
		Department: DeptMarketing,
		JobTitle:   "Content Strategist",
		ManagerID:  "emp-005",
		StartDate:  "2022-02-14",
		Salary:     78000,
		Avatar:     "DK",
		Status:     StatusOnLeave,
		Skills:     []string{"Copywriting", "SEO", "Social Media", "Email Marketing"},
		Bio:        "Storyteller at heart, growth hacker by trade.",
	},
	{
		ID:         "emp-007",
		Name:       "Lena Müller",
		Email:      "lena.muller@hrx.com",
		Phone:      "+1 415-555-0107",
		Role:       RoleEmployee,
		Department: DeptFinance,
		JobTitle:   "Financial Analyst",
		ManagerID:  "emp-001",
		StartDate:  "2021-05-03",
		Salary:     92000,
		Avatar:     "LM",
		Status:     StatusActive,
		Skills:     []string{"Financial Modeling", "Excel", "SQL", "Tableau"},
		Bio:        "Making numbers tell the right story.",
	},
	{
		ID:         "emp-008",
		Name:       "Raj Nair",
		Email:      "raj.nair@hrx.com",
		Phone:      "+1 415-555-0108",
		Role:       RoleEmployee,
		Department: DeptSales,
		JobTitle:   "Account Executive",
		ManagerID:  "emp-001",
		StartDate:  "2022-07-01",
		Salary:     85000,
		Avatar:     "RN",
		Status:     StatusActive,
		Skills:     []string{"Enterprise Sales", "CRM", "Negotiation", "Salesforce"},
		Bio:        "Closing deals and building lasting client relationships.",
	},
}
