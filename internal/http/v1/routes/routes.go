package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/greeting-service/internal/catalog"
	"github.com/janisto/greeting-service/internal/http/v1/greeting"
	"github.com/janisto/greeting-service/internal/http/v1/meta"
	"github.com/janisto/greeting-service/internal/platform/auth"
	greetingsvc "github.com/janisto/greeting-service/internal/service/greeting"
)

// Register wires all HTTP routes into the provided API router and records
// them in cat.
func Register(
	api huma.API,
	cat *catalog.Catalog,
	verifier auth.Verifier,
	greetingService greetingsvc.Service,
) {
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	greeting.Register(api, cat, greetingService)
	meta.Register(api, cat)
}
