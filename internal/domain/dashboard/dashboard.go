// Package dashboard assembles the landing-page widgets: headline stat cards,
// the performance trend chart, team KPIs and the activity feed.
package dashboard

import (
	"math"
	"strings"

	"hrx/internal/domain/data"
	"hrx/internal/domain/reports"
)

type Stats struct {
	TotalEmployees int `json:"totalEmployees"`
	ActiveToday    int `json:"activeToday"`
	OnLeave        int `json:"onLeave"`
	PendingLeaves  int `json:"pendingLeaves"`
	AverageKPI     int `json:"averageKpi"`
}

// KPIStatus decorates an authored KPI with its percent-of-target and whether
// the team is at or above target.
type KPIStatus struct {
	data.KPI
	Percent int  `json:"percent"`
	OnTrack bool `json:"onTrack"`
}

type Activity struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	Category string `json:"category"`
	When     string `json:"when"`
}

// RecentActivity is an authored feed fixture shown on the dashboard.
var RecentActivity = []Activity{
	{ID: "act-001", Message: "Priya Sharma submitted an Annual leave request", Category: "leave", When: "2h ago"},
	{ID: "act-002", Message: "January payroll run marked as Paid", Category: "payroll", When: "1d ago"},
	{ID: "act-003", Message: "Q4 2025 review cycle completed for 5 employees", Category: "performance", When: "2d ago"},
	{ID: "act-004", Message: "Marcus Webb's leave request was approved", Category: "leave", When: "3d ago"},
	{ID: "act-005", Message: "New project Brand Refresh 2026 kicked off", Category: "projects", When: "5d ago"},
}

// BuildStats computes the stat cards. pendingLeaves comes from the live leave
// service so card numbers track in-process changes.
func BuildStats(pendingLeaves int) Stats {
	stats := Stats{
		TotalEmployees: len(data.Employees),
		PendingLeaves:  pendingLeaves,
	}
	for _, emp := range data.Employees {
		switch emp.Status {
		case data.StatusOnLeave:
			stats.OnLeave++
		case data.StatusActive:
			stats.ActiveToday++
		}
	}

	var scoreSum int
	for _, record := range data.PerformanceRecords {
		scoreSum += record.KPIScore
	}
	if len(data.PerformanceRecords) > 0 {
		stats.AverageKPI = int(math.Round(float64(scoreSum) / float64(len(data.PerformanceRecords))))
	}
	return stats
}

// Trend returns the authored company trend for "All" (or blank), otherwise
// each point is scaled by the department score relative to the company
// baseline of 86 and rounded. Unknown departments fall back to the company
// trend unscaled.
func Trend(department string) []data.TrendPoint {
	scale := 1.0
	if department != "" && !strings.EqualFold(department, "all") {
		for _, dept := range data.DepartmentPerformance {
			if strings.EqualFold(string(dept.Department), department) {
				scale = float64(dept.Score) / 86.0
				break
			}
		}
	}

	out := make([]data.TrendPoint, len(data.PerformanceTrend))
	for i, point := range data.PerformanceTrend {
		out[i] = data.TrendPoint{
			Month: point.Month,
			Score: int(math.Round(float64(point.Score) * scale)),
		}
	}
	return out
}

func TeamKPIs() []KPIStatus {
	out := make([]KPIStatus, 0, len(data.TeamKPIs))
	for _, kpi := range data.TeamKPIs {
		status := KPIStatus{KPI: kpi, OnTrack: kpi.Value >= kpi.Target}
		if kpi.Target != 0 {
			status.Percent = int(math.Round(kpi.Value / kpi.Target * 100))
		}
		out = append(out, status)
	}
	return out
}

func Headcount() []reports.DepartmentHeadcount {
	return reports.HeadcountByDepartment()
}
