package notificationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrx/internal/domain/notifications"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Store *notifications.Store
}

func NewHandler(store *notifications.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/unread-count", h.handleUnreadCount)
		r.Post("/read-all", h.handleMarkAllRead)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.List(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]int{"unread": h.Store.UnreadCount()}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.Store.MarkAllRead()
	api.Success(w, map[string]int{"unread": 0}, middleware.GetRequestID(r.Context()))
}
