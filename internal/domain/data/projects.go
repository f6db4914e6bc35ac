package data

var Projects = []Project{
	{
		ID:          "proj-001",
		Name:        "Atlas CRM Revamp",
		Client:      "Northwind Retail",
		Description: "Rebuild of the customer portal with a new design system and consolidated billing views.",
		Status:      ProjectActive,
		Progress:    65,
		StartDate:   "2025-11-03",
		EndDate:     "2026-04-30",
		Budget:      180000,
		TeamIDs:     []string{"emp-002", "emp-003", "emp-004"},
	},
	{
		ID:          "proj-002",
		Name:        "Payments Gateway Migration",
		Client:      "Finch Bank",
		Description: "Migrate card processing to the new PCI-compliant gateway with zero-downtime cutover.",
		Status:      ProjectAtRisk,
		Progress:    40,
		StartDate:   "2025-12-01",
		EndDate:     "2026-03-31",
		Budget:      250000,
		TeamIDs:     []string{"emp-002", "emp-003", "emp-007"},
	},
	{
		ID:          "proj-003",
		Name:        "Brand Refresh 2026",
		Client:      "Internal",
		Description: "Company-wide brand refresh: messaging, web presence, and launch campaign.",
		Status:      ProjectActive,
		Progress:    30,
		StartDate:   "2026-01-12",
		EndDate:     "2026-06-15",
		Budget:      95000,
		TeamIDs:     []string{"emp-005", "emp-006", "emp-004"},
	},
	{
		ID:          "proj-004",
		Name:        "Q4 Analytics Rollout",
		Client:      "Helios Marketing",
		Description: "Self-serve analytics dashboards with warehouse-backed reporting.",
		Status:      ProjectCompleted,
		Progress:    100,
		StartDate:   "2025-09-01",
		EndDate:     "2025-12-20",
		Budget:      120000,
		TeamIDs:     []string{"emp-003", "emp-007"},
	},
	{
		ID:          "proj-005",
		Name:        "Enterprise Onboarding Kit",
		Client:      "Vantage Logistics",
		Description: "Sales enablement and onboarding playbook for enterprise accounts.",
		Status:      ProjectOnHold,
		Progress:    15,
		StartDate:   "2026-02-02",
		EndDate:     "2026-05-29",
		Budget:      60000,
		TeamIDs:     []string{"emp-008", "emp-005"},
	},
}
