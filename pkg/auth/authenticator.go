package auth

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("missing API key")
	ErrInvalidCredential = errors.New("invalid API key")
	ErrConfiguration     = errors.New("server config error")
)

// HeaderName carries the caller's API key.
const HeaderName = "x-api-key"

// Identity is the caller resolved from a valid API key.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// Authenticator validates API keys against a CredentialStore.
// Keys never expire.
type Authenticator struct {
	creds *CredentialStore
}

func NewAuthenticator(creds *CredentialStore) *Authenticator {
	return &Authenticator{creds: creds}
}

// Authenticate resolves key. The missing-key check runs before the
// configuration check so an anonymous request is always a 401.
func (a *Authenticator) Authenticate(key string) (Identity, error) {
	if key == "" {
		return Identity{}, ErrMissingCredential
	}
	if err := a.creds.Err(); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	id, ok := a.creds.lookup(key)
	if !ok {
		return Identity{}, ErrInvalidCredential
	}

	return Identity{UserID: id, IsAdmin: a.creds.isAdmin(id)}, nil
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
