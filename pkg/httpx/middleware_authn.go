package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

// AuthnMiddleware rejects requests without a valid session with 401 and
// attaches the identity to the context otherwise.
func AuthnMiddleware(g *Gate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			rc := RequestContext{Cookies: CookieMap(r)}

			id, err := g.RequireSession(rc)
			if err != nil {
				token, _ := g.Cookie.Read(rc.Cookies)
				logRejectedSession(r, token, err)
				ErrAPIUnauthenticated.WriteError(w)
				return
			}

			ctx = WithIdentity(ctx, id)
			ctx = slogx.With(ctx, "user_id", id.SubjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalSession attaches the identity when a valid session is present and
// passes every request through.
func OptionalSession(g *Gate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := RequestContext{Cookies: CookieMap(r)}
			token, ok := g.Cookie.Read(rc.Cookies)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			id, err := g.RequireSession(rc)
			if err != nil {
				logRejectedSession(r, token, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = slogx.With(ctx, "user_id", id.SubjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func logRejectedSession(r *http.Request, token string, err error) {
	log := slogx.FromContext(r.Context())
	if token == "" {
		log.Debug("no session cookie")
		return
	}
	log.Warn("session rejected", "err", err, "token_fp", cryptox.FingerprintToken(token))
}
