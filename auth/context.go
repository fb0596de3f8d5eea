// Package auth, as part of the authentication module.
// This file, `context.go`, holds the utilities for carrying the authenticated
// identity through the request's `context.Context`. The gate middleware puts
// the verified claims in; downstream handlers take them out (for example to
// stamp `createdBy` on a newly created product).
package auth

import (
	"context"
)

// contextKey is a custom type for context keys. Using an unexported custom
// type prevents collisions with context keys defined in other packages.
type contextKey string

const (
	// claimsContextKey is the key under which verified claims are stored.
	claimsContextKey contextKey = "auth_claims"
)

// NewContextWithClaims returns a child context carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts the verified claims from the context.
// The boolean reports whether claims were present and of the correct type;
// it is false on any request that did not pass through the gate.
func ClaimsFromContext(ctx context.Context) (*CustomClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*CustomClaims)
	return claims, ok
}
