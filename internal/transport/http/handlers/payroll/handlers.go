package payrollhandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/data"
	"hrx/internal/domain/payroll"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/records", h.handleListRecords)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Get("/records/{recordID}/payslip", h.handlePayslip)
		r.Get("/months", h.handleMonths)
		r.Get("/summary", h.handleSummary)
		r.Get("/distribution", h.handleDistribution)
	})
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records := h.Service.List(r.URL.Query().Get("employee"), r.URL.Query().Get("month"))
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.Service.Get(chi.URLParam(r, "recordID"))
	if !ok {
		api.NotFound(w, "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

// handlePayslip streams the record's payslip as a PDF download.
func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	record, ok := h.Service.Get(chi.URLParam(r, "recordID"))
	if !ok {
		api.NotFound(w, "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	emp, ok := data.EmployeeByID(record.EmployeeID)
	if !ok {
		api.NotFound(w, "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	pdf, err := payroll.RenderPayslipPDF(record, emp)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to render payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s.pdf", record.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *Handler) handleMonths(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Months(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	records := h.Service.List(r.URL.Query().Get("employee"), r.URL.Query().Get("month"))
	api.Success(w, payroll.Summarize(records), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	api.Success(w, payroll.DepartmentDistribution(), middleware.GetRequestID(r.Context()))
}
