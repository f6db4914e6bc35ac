package offboardinghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/offboarding"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *offboarding.Service
}

func NewHandler(service *offboarding.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/offboarding", func(r chi.Router) {
		r.Get("/cases", h.handleListCases)
		r.Post("/cases", h.handleInitiate)
		r.Post("/cases/{caseID}/fnf", h.handleComputeFNF)
		r.Get("/settlements", h.handleListSettlements)
	})
}

func (h *Handler) handleListCases(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Cases(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Settlements(), middleware.GetRequestID(r.Context()))
}

type initiatePayload struct {
	EmployeeID      string `json:"employeeId"`
	ResignationDate string `json:"resignationDate"`
	LastWorkingDay  string `json:"lastWorkingDay"`
}

func (h *Handler) handleInitiate(w http.ResponseWriter, r *http.Request) {
	var payload initiatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	offCase, err := h.Service.Initiate(payload.EmployeeID, payload.ResignationDate, payload.LastWorkingDay)
	if err != nil {
		api.NotFound(w, "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, offCase, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleComputeFNF(w http.ResponseWriter, r *http.Request) {
	settlement, err := h.Service.ComputeFNF(chi.URLParam(r, "caseID"))
	if err != nil {
		api.NotFound(w, "offboarding case not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, settlement, middleware.GetRequestID(r.Context()))
}
