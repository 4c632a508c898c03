package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

type whoamiOutput struct {
	Body struct {
		UserID string `json:"user_id"`
	}
}

func setupTestAPI(verifier Verifier, requireAuth bool) *chi.Mux {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(NewAuthMiddleware(api, verifier))

	var security []map[string][]string
	if requireAuth {
		security = []map[string][]string{{"bearerAuth": {}}}
	}
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Security:    security,
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		out := &whoamiOutput{}
		if user := UserFromContext(ctx); user != nil {
			out.Body.UserID = user.UID
		}
		return out, nil
	})
	return router
}

func serve(router http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareSkipsUnsecuredOperations(t *testing.T) {
	rec := serve(setupTestAPI(DisabledVerifier{}, false), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unsecured operation, got %d", rec.Code)
	}
}

func TestMiddlewareAuthenticatesValidToken(t *testing.T) {
	verifier := &MockVerifier{User: &User{UID: "verified-user-789"}}
	rec := serve(setupTestAPI(verifier, true), "Bearer valid-token")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid token, got %d", rec.Code)
	}
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.UserID != "verified-user-789" {
		t.Fatalf("expected verified-user-789, got %s", body.UserID)
	}
}

func TestMiddlewareRejections(t *testing.T) {
	tests := []struct {
		name          string
		verifier      Verifier
		authorization string
		status        int
		header        string
		headerValue   string
	}{
		{"missing header", &MockVerifier{User: &User{UID: "u"}}, "", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"basic scheme", &MockVerifier{User: &User{UID: "u"}}, "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"expired", &MockVerifier{Error: ErrTokenExpired}, "Bearer t", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"revoked", &MockVerifier{Error: ErrTokenRevoked}, "Bearer t", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"disabled user", &MockVerifier{Error: ErrUserDisabled}, "Bearer t", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"no identity provider", DisabledVerifier{}, "Bearer t", http.StatusUnauthorized, "WWW-Authenticate", "Bearer"},
		{"certificate fetch", &MockVerifier{Error: ErrCertificateFetch}, "Bearer t", http.StatusServiceUnavailable, "Retry-After", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(setupTestAPI(tt.verifier, true), tt.authorization)
			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if got := rec.Header().Get(tt.header); got != tt.headerValue {
				t.Fatalf("expected %s: %q, got %q", tt.header, tt.headerValue, got)
			}
		})
	}
}

func TestUserFromContext(t *testing.T) {
	if UserFromContext(context.Background()) != nil {
		t.Fatal("expected nil user from unauthenticated context")
	}
	want := &User{UID: "context-user"}
	ctx := context.WithValue(context.Background(), userContextKey{}, want)
	if got := UserFromContext(ctx); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
