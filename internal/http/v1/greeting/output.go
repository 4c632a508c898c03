package greeting

// GetOutput for GET /greeting/{name}
type GetOutput struct {
	Body Data
}
