package auth

import "context"

type identityKey struct{}

type claimsKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated caller identity
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the authenticated caller identity stored in ctx.
// The boolean is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	if !ok || identity == "" {
		return "", false
	}
	return identity, true
}

// WithClaims returns a copy of ctx carrying the validated token claims
func WithClaims(ctx context.Context, claims map[string]any) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the token claims stored in ctx, or nil
func ClaimsFromContext(ctx context.Context) map[string]any {
	claims, _ := ctx.Value(claimsKey{}).(map[string]any)
	return claims
}
