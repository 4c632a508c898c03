package catalog

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// BearerScheme is the OpenAPI security scheme attached to auth endpoints.
const BearerScheme = "bearerAuth"

// Register records ep under svc and registers the huma operation serving it.
// The operation ID is "<service>-<endpoint>" and the service name becomes the
// OpenAPI tag. Private endpoints go to the catalog's internal API instead of
// api. Invalid or duplicate declarations panic.
func Register[I, O any](
	api huma.API,
	svc *Service,
	ep Endpoint,
	handler func(context.Context, *I) (*O, error),
) {
	opID := svc.cat.add(svc, ep)

	op := huma.Operation{
		OperationID: opID,
		Method:      ep.Method,
		Path:        ep.Path,
		Summary:     ep.Summary,
		Description: ep.Description,
		Tags:        []string{svc.name},
	}
	switch ep.Access() {
	case Private:
		huma.Register(svc.cat.internalAPI, op, handler)
		return
	case Auth:
		ensureBearerScheme(api.OpenAPI())
		op.Security = []map[string][]string{{BearerScheme: {}}}
		op.Errors = []int{http.StatusUnauthorized, http.StatusServiceUnavailable}
	}

	huma.Register(api, op, handler)
}

func ensureBearerScheme(oapi *huma.OpenAPI) {
	if oapi.Components == nil {
		oapi.Components = &huma.Components{}
	}
	if oapi.Components.SecuritySchemes == nil {
		oapi.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
	}
	if _, ok := oapi.Components.SecuritySchemes[BearerScheme]; ok {
		return
	}
	oapi.Components.SecuritySchemes[BearerScheme] = &huma.SecurityScheme{
		Type:         "http",
		Scheme:       "bearer",
		BearerFormat: "JWT",
	}
}
