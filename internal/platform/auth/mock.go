package auth

import "context"

// MockVerifier provides fake token verification for tests.
type MockVerifier struct {
	User  *User
	Error error
}

// Verify returns the configured error, or else the configured user.
func (m *MockVerifier) Verify(context.Context, string) (*User, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.User, nil
}

var _ Verifier = (*MockVerifier)(nil)
