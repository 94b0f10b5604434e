package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	var reached int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached++
		w.WriteHeader(http.StatusOK)
	})
	h := httpx.CORS([]string{"http://localhost:3000", " HTTPS://Memories.Example.com/ "})(next)

	tests := []struct {
		name          string
		method        string
		origin        string
		preflight     bool
		wantStatus    int
		wantAllowed   bool
		wantReachNext bool
	}{
		{"same origin request", http.MethodPost, "", false, http.StatusOK, false, true},
		{"allowed origin", http.MethodPost, "http://localhost:3000", false, http.StatusOK, true, true},
		{"allow-list is normalised", http.MethodGet, "https://memories.example.com", false, http.StatusOK, true, true},
		{"unknown origin passes without headers", http.MethodPost, "https://evil.example", false, http.StatusOK, false, true},
		{"allowed preflight", http.MethodOptions, "http://localhost:3000", true, http.StatusNoContent, true, false},
		{"unknown preflight", http.MethodOptions, "https://evil.example", true, http.StatusForbidden, false, false},
		{"plain OPTIONS is not a preflight", http.MethodOptions, "http://localhost:3000", false, http.StatusOK, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = 0
			req := httptest.NewRequest(tt.method, "/api/login", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
				req.Header.Set("Access-Control-Request-Headers", "content-type")
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantReachNext, reached == 1)
			if tt.wantAllowed {
				require.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
				require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.origin != "" {
				require.Contains(t, rec.Header().Values("Vary"), "Origin")
			}
		})
	}
}

func TestCORSPreflightAdvertisesMethods(t *testing.T) {
	h := httpx.CORS([]string{"http://localhost:3000"})(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/e", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	require.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestNormalizeOrigin(t *testing.T) {
	require.Equal(t, "http://localhost:3000", httpx.NormalizeOrigin(" http://LOCALHOST:3000/ "))
	require.Empty(t, httpx.NormalizeOrigin("  "))
}

func TestSecurityHeaders(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	t.Run("plain http", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.SecurityHeaders(false)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		require.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
		require.Empty(t, rec.Header().Get("Strict-Transport-Security"))
	})

	t.Run("tls deployment", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.SecurityHeaders(true)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
	})
}
