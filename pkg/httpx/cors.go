package httpx

import (
	"net/http"
	"strconv"
	"strings"
)

// CORS settings applied to allow-listed origins.
const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
	corsMaxAge       = 600 // seconds
)

// NormalizeOrigin lowercases origin and drops a trailing slash so allow-list
// entries compare equal to what browsers send.
func NormalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}

// CORS answers cross-origin requests from allowed origins with credentials
// enabled. The request origin is echoed, never "*", since browsers refuse a
// wildcard when cookies are sent.
//
// Preflights (OPTIONS with Access-Control-Request-Method) are answered here
// with 204 for allowed origins and 403 otherwise, so they never reach a
// handler or count as a login attempt. Other requests from unknown origins
// pass through without CORS headers and the browser withholds the response.
func CORS(allowedOrigins []string) Middleware {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = NormalizeOrigin(o); o != "" {
			allowed[o] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")

			_, ok := allowed[NormalizeOrigin(origin)]
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if !ok {
					w.WriteHeader(http.StatusForbidden)
					return
				}
				h.Add("Vary", "Access-Control-Request-Method")
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Methods", corsAllowMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Max-Age", strconv.Itoa(corsMaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
