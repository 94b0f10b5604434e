package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

// AuthzMiddleware requires the identity attached by AuthnMiddleware to hold
// role. A missing identity is 401, a different role is 403.
func AuthzMiddleware(g *Gate, role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				ErrAPIUnauthenticated.WriteError(w)
				return
			}

			if err := g.checkRole(id, role); err != nil {
				slogx.FromContext(r.Context()).Warn("access denied", "role", id.Role, "required", role)
				ErrAPIForbidden.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
