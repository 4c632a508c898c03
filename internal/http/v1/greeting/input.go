package greeting

// GetInput for GET /greeting/{name}
type GetInput struct {
	Name string `path:"name" doc:"Name to greet, used verbatim" example:"World"`
}
