package greeting

// Data is the greeting response body.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello World!"`
}
