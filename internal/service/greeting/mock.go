package greeting

import (
	"context"
	"sync"
)

// MockService implements Service for handler tests. It records the names it
// was called with and returns Err when set.
type MockService struct {
	Err error

	mu    sync.Mutex
	names []string
}

// Greet records name and returns Err or the regular greeting.
func (m *MockService) Greet(_ context.Context, name string) (*Greeting, error) {
	m.mu.Lock()
	m.names = append(m.names, name)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return &Greeting{Message: Message(name)}, nil
}

// Names returns the names Greet was called with, in call order.
func (m *MockService) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.names...)
}

var _ Service = (*MockService)(nil)
