package performancehandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/performance"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *performance.Service
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/records", h.handleListRecords)
		r.Get("/records/{recordID}", h.handleGetRecord)
		r.Get("/top", h.handleTopPerformers)
		r.Get("/distribution", h.handleDistribution)
		r.Get("/goals/summary", h.handleGoalSummary)
		r.Post("/goals", h.handleAddGoal)
	})
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records := h.Service.List(r.URL.Query().Get("period"))
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	record, ok := h.Service.Get(chi.URLParam(r, "recordID"))
	if !ok {
		api.NotFound(w, "performance record not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTopPerformers(w http.ResponseWriter, r *http.Request) {
	limit := 3
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			api.BadRequest(w, "limit must be a positive integer", middleware.GetRequestID(r.Context()))
			return
		}
		limit = parsed
	}
	api.Success(w, h.Service.TopPerformers(limit), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.ScoreDistribution(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGoalSummary(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{
		"goals":        h.Service.CountGoals(),
		"averageScore": h.Service.AverageScore(),
	}, middleware.GetRequestID(r.Context()))
}

type goalPayload struct {
	EmployeeID  string `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Period      string `json:"period"`
	DueDate     string `json:"dueDate"`
}

func (h *Handler) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var payload goalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	goal, err := h.Service.AddGoal(payload.EmployeeID, payload.Title, payload.Description, payload.Period, payload.DueDate)
	if err != nil {
		api.NotFound(w, "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, goal, middleware.GetRequestID(r.Context()))
}
