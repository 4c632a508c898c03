// Package auth verifies bearer tokens for operations whose catalog access
// level is "auth".
package auth

import (
	"context"
	"errors"
	"strings"
)

// User is the caller identity attached to the request context after a
// token has been verified.
type User struct {
	UID           string
	Email         string
	EmailVerified bool
}

var (
	// ErrNoToken indicates a missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates a malformed, unsigned or unknown token.
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenExpired = errors.New("token expired")
	ErrTokenRevoked = errors.New("token revoked")
	ErrUserDisabled = errors.New("user disabled")

	// ErrCertificateFetch indicates the verifier could not fetch signing
	// keys. Callers answer 503 rather than 401.
	ErrCertificateFetch = errors.New("failed to fetch certificates")
)

// Verifier validates tokens and returns the caller.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// DisabledVerifier rejects every token. It is installed when no identity
// provider is configured so auth endpoints fail closed.
type DisabledVerifier struct{}

// Verify always returns ErrInvalidToken.
func (DisabledVerifier) Verify(context.Context, string) (*User, error) {
	return nil, ErrInvalidToken
}

// ExtractBearerToken extracts the token from an Authorization header value.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

var _ Verifier = DisabledVerifier{}
