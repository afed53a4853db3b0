package ports

import (
	"context"
)

// Identity is the authenticated caller as reported by the auth provider.
type Identity struct {
	UserID      string
	DisplayName string
	IsAdmin     bool
}

// IdentityProvider resolves bearer tokens into identities. Implementations
// talk to the external auth service; handlers only see the resolved Identity.
type IdentityProvider interface {
	// Resolve validates the access token and returns the caller's identity.
	// Returns errs.ObjectNotFoundError for unknown or expired tokens.
	Resolve(ctx context.Context, accessToken string) (Identity, error)
}
