package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrx/internal/auth"
	"hrx/internal/transport/http/api"
)

// Auth enforces Bearer tokens when a secret is configured. With no secret the
// middleware is a pass-through, which keeps the demo deployable without any
// auth setup.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			parts := strings.Split(header, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "bearer token required", GetRequestID(r.Context()))
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token", GetRequestID(r.Context()))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(ctxKeyUser).(auth.Claims)
	return claims, ok
}
