package httpx

import (
	"context"

	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
)

type identityKey struct{}

// WithIdentity returns ctx carrying a verified session identity.
func WithIdentity(ctx context.Context, id jwtx.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by AuthnMiddleware or
// OptionalSession, if any.
func IdentityFromContext(ctx context.Context) (jwtx.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(jwtx.Identity)
	return id, ok
}
