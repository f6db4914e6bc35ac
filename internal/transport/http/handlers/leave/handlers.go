package leavehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/data"
	"hrx/internal/domain/leave"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
	"hrx/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleSubmitRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.Post("/requests/{requestID}/approve", h.handleApprove)
		r.Post("/requests/{requestID}/reject", h.handleReject)
		r.Get("/summary", h.handleSummary)
		r.Get("/calendar", h.handleCalendar)
		r.Get("/balances/{employeeID}", h.handleBalances)
	})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.Service.List(r.URL.Query().Get("status"), r.URL.Query().Get("employee"))
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

type submitPayload struct {
	EmployeeID string `json:"employeeId"`
	Type       string `json:"type"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

func (h *Handler) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	var payload submitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	request, err := h.Service.Submit(payload.EmployeeID, data.LeaveType(payload.Type), payload.StartDate, payload.EndDate, payload.Reason)
	if err != nil {
		api.BadRequest(w, err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	request, ok := h.Service.Get(chi.URLParam(r, "requestID"))
	if !ok {
		api.NotFound(w, "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

type decisionPayload struct {
	ApproverID string `json:"approverId"`
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Approve)
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Reject)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, decide func(id, approverID string) (data.LeaveRequest, error)) {
	var payload decisionPayload
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	request, err := decide(chi.URLParam(r, "requestID"), payload.ApproverID)
	if err != nil {
		api.NotFound(w, "leave request not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, request, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = data.ReferenceDate.Format("2006-01")
	}
	api.Success(w, h.Service.Summarize(month), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	year, month := data.ReferenceDate.Year(), data.ReferenceDate.Month()
	if value := r.URL.Query().Get("month"); value != "" {
		parsedYear, parsedMonth, err := shared.ParseMonth(value)
		if err != nil {
			api.BadRequest(w, "month must be YYYY-MM", middleware.GetRequestID(r.Context()))
			return
		}
		year, month = parsedYear, parsedMonth
	}

	today := data.ReferenceDate
	if value := r.URL.Query().Get("today"); value != "" {
		parsed, err := shared.ParseDate(value)
		if err != nil {
			api.BadRequest(w, "today must be YYYY-MM-DD", middleware.GetRequestID(r.Context()))
			return
		}
		today = parsed
	}

	api.Success(w, h.Service.Calendar(year, month, today), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBalances(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Service.BalanceCards(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.NotFound(w, "leave balance not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, cards, middleware.GetRequestID(r.Context()))
}
