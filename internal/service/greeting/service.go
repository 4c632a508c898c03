package greeting

import "context"

// Greeting is the result of greeting someone.
type Greeting struct {
	Message string
}

// Service builds greetings.
type Service interface {
	Greet(ctx context.Context, name string) (*Greeting, error)
}

// Message returns the greeting text for name. The name is used verbatim.
func Message(name string) string {
	return "Hello " + name + "!"
}
