package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// CORS returns a permissive CORS middleware for a read-only public API.
// Only safe methods are allowed; request and trace IDs may be sent by
// browsers and the request ID is exposed back to them.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			middleware.RequestIDHeader,
			"traceparent",
		},
		ExposedHeaders: []string{"Link", middleware.RequestIDHeader},
		MaxAge:         300,
	})
}
