package employeehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/directory"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleAdd)
		r.Get("/{employeeID}", h.handleProfile)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	filter := directory.Filter{
		Query:      r.URL.Query().Get("q"),
		Department: r.URL.Query().Get("department"),
		Role:       r.URL.Query().Get("role"),
	}
	api.Success(w, h.Service.List(filter), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Service.GetProfile(chi.URLParam(r, "employeeID"))
	if err != nil {
		api.NotFound(w, "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, profile, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload directory.NewEmployee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Service.Add(payload)
	if err != nil {
		api.BadRequest(w, err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}
