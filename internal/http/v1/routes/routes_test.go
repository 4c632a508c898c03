package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/greeting-service/internal/catalog"
	"github.com/janisto/greeting-service/internal/platform/auth"
	applog "github.com/janisto/greeting-service/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-service/internal/platform/middleware"
	"github.com/janisto/greeting-service/internal/platform/respond"
	greetingsvc "github.com/janisto/greeting-service/internal/service/greeting"
)

func newTestRouter() (chi.Router, huma.API, *catalog.Catalog) {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	cat := catalog.New()
	Register(api, cat, auth.DisabledVerifier{}, greetingsvc.NewService())
	return router, api, cat
}

func TestRegisterRoutesGreeting(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/greeting/World", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-greeting")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body.Message != "Hello World!" {
		t.Fatalf("expected 'Hello World!', got %s", body.Message)
	}
}

func TestRegisterRoutesMeta(t *testing.T) {
	router, _, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/meta/services", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "routes-meta")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestRegisterCatalogSnapshot(t *testing.T) {
	_, _, cat := newTestRouter()
	snap := cat.Snapshot()

	if len(snap.Services) != 1 || snap.Services[0].Name != "greeting" {
		t.Fatalf("expected only the greeting service, got %+v", snap.Services)
	}
	got := snap.Services[0].APIs
	want := catalog.APIInfo{Name: "get", Path: "/greeting/{name}", Method: http.MethodGet, Access: catalog.Public}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRegisterOpenAPIOperations(t *testing.T) {
	_, api, _ := newTestRouter()
	paths := api.OpenAPI().Paths

	if op := paths["/greeting/{name}"]; op == nil || op.Get == nil || op.Get.OperationID != "greeting-get" {
		t.Fatalf("expected greeting-get operation, got %+v", op)
	}
	if op := paths["/meta/services"]; op == nil || op.Get == nil || op.Get.OperationID != "meta-services" {
		t.Fatalf("expected meta-services operation, got %+v", op)
	}
}
