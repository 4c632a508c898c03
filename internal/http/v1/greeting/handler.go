package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/greeting-service/internal/catalog"
	applog "github.com/janisto/greeting-service/internal/platform/logging"
	greetingsvc "github.com/janisto/greeting-service/internal/service/greeting"
)

// ServiceName is the catalog name of the greeting service.
const ServiceName = "greeting"

// Register declares the greeting service in cat and wires its endpoints.
func Register(api huma.API, cat *catalog.Catalog, svc greetingsvc.Service) {
	s := cat.Service(ServiceName, "Greets callers by name.")

	catalog.Register(api, s, catalog.Endpoint{
		Name:        "get",
		Method:      http.MethodGet,
		Path:        "/greeting/{name}",
		Summary:     "Greet someone by name",
		Description: "Returns \"Hello <name>!\" for the name in the path.",
		Expose:      true,
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		g, err := svc.Greet(ctx, input.Name)
		if err != nil {
			applog.LogError(ctx, "greeting failed", err, zap.String("name", input.Name))
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &GetOutput{Body: Data{Message: g.Message}}, nil
	})
}
