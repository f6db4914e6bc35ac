package reportshandler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/reports"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/headcount", h.handleHeadcount)
		r.Get("/leave-types", h.handleLeaveTypes)
		r.Get("/salary", h.handleSalary)
		r.Get("/leave-status", h.handleLeaveStatus)
		r.Get("/workforce", h.handleWorkforce)
		r.Get("/{report}/export", h.handleExport)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.Summarize(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.HeadcountByDepartment(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLeaveTypes(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.LeaveByType(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSalary(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.SalaryByDepartment(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLeaveStatus(w http.ResponseWriter, r *http.Request) {
	api.Success(w, reports.LeaveStatusBreakdown(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleWorkforce(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"byRole":   reports.WorkforceByRole(),
		"byStatus": reports.WorkforceByStatus(),
	}, middleware.GetRequestID(r.Context()))
}

// handleExport streams the named report as a CSV download.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	report := chi.URLParam(r, "report")

	var header []string
	var rows [][]string
	switch report {
	case "headcount":
		header = []string{"department", "count"}
		for _, entry := range reports.HeadcountByDepartment() {
			rows = append(rows, []string{string(entry.Department), strconv.Itoa(entry.Count)})
		}
	case "leave-types":
		header = []string{"type", "count"}
		for _, entry := range reports.LeaveByType() {
			rows = append(rows, []string{string(entry.Type), strconv.Itoa(entry.Count)})
		}
	case "salary":
		header = []string{"department", "monthly_thousands"}
		for _, entry := range reports.SalaryByDepartment() {
			rows = append(rows, []string{string(entry.Department), strconv.Itoa(entry.MonthlyThousands)})
		}
	case "leave-status":
		header = []string{"status", "count", "percent"}
		for _, entry := range reports.LeaveStatusBreakdown() {
			rows = append(rows, []string{string(entry.Status), strconv.Itoa(entry.Count), strconv.Itoa(entry.Percent)})
		}
	default:
		api.NotFound(w, "unknown report", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", report))
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		slog.Warn("report export header write failed", "err", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			slog.Warn("report export row write failed", "err", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		slog.Warn("report export flush failed", "err", err)
	}
}
