package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hrx/internal/transport/http/api"
)

// Recoverer turns a handler panic into a 500 envelope instead of a dropped
// connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
					"requestId", GetRequestID(r.Context()),
				)
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
