package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/greeting-service/internal/catalog"
	"github.com/janisto/greeting-service/internal/config"
	"github.com/janisto/greeting-service/internal/http/health"
	"github.com/janisto/greeting-service/internal/http/v1/routes"
	"github.com/janisto/greeting-service/internal/platform/auth"
	"github.com/janisto/greeting-service/internal/platform/firebase"
	applog "github.com/janisto/greeting-service/internal/platform/logging"
	appmiddleware "github.com/janisto/greeting-service/internal/platform/middleware"
	"github.com/janisto/greeting-service/internal/platform/respond"
	greetingsvc "github.com/janisto/greeting-service/internal/service/greeting"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const maxRequestBody = 1 << 20 // 1 MB

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config error", err)
		os.Exit(1)
	}
	applog.SetLevel(cfg.LogLevel)
	applog.SetProjectID(cfg.ProjectID)

	verifier, err := newVerifier(context.Background(), cfg)
	if err != nil {
		applog.LogError(context.Background(), "auth init error", err)
		os.Exit(1)
	}

	router, _, _ := newRouter(cfg, verifier, greetingsvc.NewService())
	srv := newHTTPServer(cfg.Addr(), router)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// newVerifier returns a Firebase-backed verifier when a project is configured
// and a verifier that rejects every token otherwise.
func newVerifier(ctx context.Context, cfg config.Config) (auth.Verifier, error) {
	if cfg.ProjectID == "" {
		applog.LogWarn(ctx, "no firebase project configured, auth endpoints will reject all tokens")
		return auth.DisabledVerifier{}, nil
	}
	clients, err := firebase.InitializeClients(ctx, firebase.Config{
		ProjectID:                    cfg.ProjectID,
		GoogleApplicationCredentials: cfg.Credentials,
	})
	if err != nil {
		return nil, err
	}
	return auth.NewFirebaseVerifier(clients.Auth), nil
}

// newRouter builds the middleware stack, the huma API and the route table.
func newRouter(cfg config.Config, verifier auth.Verifier, svc greetingsvc.Service) (*chi.Mux, huma.API, *catalog.Catalog) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(cfg.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Real-IP and X-Forwarded-For. Only deploy behind a
		// proxy that overwrites them (Cloud Run, nginx).
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)
	router.Head("/health", health.Handler)

	humaCfg := huma.DefaultConfig("Greeting Service", Version)
	humaCfg.DocsPath = cfg.DocsPath
	api := humachi.New(router, humaCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

	cat := catalog.New()
	routes.Register(api, cat, verifier, svc)
	return router, api, cat
}

// addCBORContent mirrors every JSON request and response schema as CBOR.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}
