package settingshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/settings"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *settings.Service
}

func NewHandler(service *settings.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/company", h.handleGetCompany)
		r.Put("/company", h.handleUpdateCompany)
		r.Get("/notifications", h.handleGetPreferences)
		r.Put("/notifications", h.handleUpdatePreferences)
		r.Get("/audit-log", h.handleAuditLog)
	})
}

// actor resolves the acting user for the audit trail. Without auth claims the
// demo admin is assumed.
func actor(r *http.Request) string {
	if claims, ok := middleware.GetUser(r.Context()); ok {
		return claims.EmployeeID
	}
	return "Sarah Chen"
}

func (h *Handler) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Company(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var payload settings.Company
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Service.UpdateCompany(payload, actor(r)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Preferences(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var payload settings.Preferences
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Service.UpdatePreferences(payload, actor(r)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.AuditLog(), middleware.GetRequestID(r.Context()))
}
