package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/dashboard"
	"hrx/internal/domain/leave"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Leave *leave.Service
}

func NewHandler(leaveSvc *leave.Service) *Handler {
	return &Handler{Leave: leaveSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/trend", h.handleTrend)
		r.Get("/kpis", h.handleKPIs)
		r.Get("/activity", h.handleActivity)
		r.Get("/headcount", h.handleHeadcount)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	pending := len(h.Leave.List("Pending", ""))
	api.Success(w, dashboard.BuildStats(pending), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	api.Success(w, dashboard.Trend(r.URL.Query().Get("department")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleKPIs(w http.ResponseWriter, r *http.Request) {
	api.Success(w, dashboard.TeamKPIs(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	api.Success(w, dashboard.RecentActivity, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	api.Success(w, dashboard.Headcount(), middleware.GetRequestID(r.Context()))
}
