package greeting

import "context"

// Greeter is the production Service. It holds no state.
type Greeter struct{}

// NewService returns the production greeting service.
func NewService() *Greeter {
	return &Greeter{}
}

// Greet never fails.
func (*Greeter) Greet(_ context.Context, name string) (*Greeting, error) {
	return &Greeting{Message: Message(name)}, nil
}

var _ Service = (*Greeter)(nil)
