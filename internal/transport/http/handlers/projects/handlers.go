package projectshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/projects"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Service *projects.Service
}

func NewHandler(service *projects.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/stats", h.handleStats)
		r.Get("/{projectID}", h.handleGet)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.List(r.URL.Query().Get("status")), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	project, ok := h.Service.Get(chi.URLParam(r, "projectID"))
	if !ok {
		api.NotFound(w, "project not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, project, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload projects.NewProject
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	project, err := h.Service.Create(payload)
	if err != nil {
		api.BadRequest(w, err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, project, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Stats(), middleware.GetRequestID(r.Context()))
}
