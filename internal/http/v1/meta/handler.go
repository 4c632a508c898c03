// Package meta exposes the service catalog over HTTP. It is served next to
// the catalog rather than declared in it, so snapshots list only the
// application's own services.
package meta

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/greeting-service/internal/catalog"
)

// ServicesOutput for GET /meta/services
type ServicesOutput struct {
	Body catalog.Snapshot
}

// Register wires the catalog snapshot endpoint.
func Register(api huma.API, cat *catalog.Catalog) {
	huma.Register(api, huma.Operation{
		OperationID: "meta-services",
		Method:      http.MethodGet,
		Path:        "/meta/services",
		Summary:     "List services and their APIs",
		Description: "Returns every declared service with its endpoints and access levels.",
		Tags:        []string{"meta"},
	}, func(_ context.Context, _ *struct{}) (*ServicesOutput, error) {
		return &ServicesOutput{Body: cat.Snapshot()}, nil
	})
}
