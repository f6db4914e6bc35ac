package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrx/internal/auth"
	"hrx/internal/domain/data"
	"hrx/internal/transport/http/api"
	"hrx/internal/transport/http/middleware"
)

type Handler struct {
	Secret       string
	TTL          time.Duration
	PasswordHash string
}

// NewHandler hashes the demo password once at startup. Every dataset employee
// shares it; the email picks the identity.
func NewHandler(secret, demoPassword string, ttl time.Duration) (*Handler, error) {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}
	return &Handler{Secret: secret, TTL: ttl, PasswordHash: hash}, nil
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
	})
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string        `json:"token"`
	Employee data.Employee `json:"employee"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.BadRequest(w, "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, ok := data.EmployeeByEmail(payload.Email)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", middleware.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckPassword(h.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{EmployeeID: emp.ID, Role: string(emp.Role)}, h.TTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, loginResponse{Token: token, Employee: emp}, middleware.GetRequestID(r.Context()))
}

// handleLogout exists for symmetry; tokens are stateless and dropped client
// side.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]bool{"loggedOut": true}, middleware.GetRequestID(r.Context()))
}
