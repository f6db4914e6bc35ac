package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrx/internal/auth"
)

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected a generated request id")
	}
	if rec.Header().Get("X-Request-Id") != seen {
		t.Fatal("response header must carry the request id")
	}
}

func TestRequestIDHonorsInboundHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "upstream-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "upstream-123" {
		t.Fatalf("expected upstream id, got %q", seen)
	}
}

func TestAuthPassThroughWithoutSecret(t *testing.T) {
	called := false
	handler := Auth("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatal("expected pass-through with no secret configured")
	}
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, err := auth.GenerateToken("secret", auth.Claims{EmployeeID: "emp-001", Role: "HR Admin"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	var claims auth.Claims
	handler := Auth("secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if claims.EmployeeID != "emp-001" {
		t.Fatalf("expected claims in context, got %+v", claims)
	}
}

func TestRecovererConvertsPanics(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
