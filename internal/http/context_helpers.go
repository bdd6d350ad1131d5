package httpx

import (
	"context"

	domainauth "github.com/fixly/fixly-api/internal/domain/auth"
)

// principalKey is an unexported context key type to avoid collisions across
// packages. Centralized here so handlers and middleware use the same key.
type principalKey struct{}

// tokenKey carries the raw bearer token, needed by the logout handler.
type tokenKey struct{}

// SetPrincipalInContext returns a child context carrying the principal.
func SetPrincipalInContext(ctx context.Context, p domainauth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated principal and a boolean
// indicating presence.
func PrincipalFromContext(ctx context.Context) (domainauth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domainauth.Principal)
	return p, ok
}

// SetTokenInContext returns a child context carrying the raw bearer token.
func SetTokenInContext(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the raw bearer token for the request, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey{}).(string)
	return t, ok && t != ""
}
