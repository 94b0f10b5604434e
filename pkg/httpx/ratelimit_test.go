package httpx_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func TestClientIPKeyExtractor(t *testing.T) {
	t.Run("uses RemoteAddr", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		require.Equal(t, "192.168.1.1", httpx.ClientIPKeyExtractor(false)(req))
	})

	t.Run("ignores forwarding headers by default", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1")
		require.Equal(t, "192.168.1.1", httpx.ClientIPKeyExtractor(false)(req))
	})

	t.Run("prefers X-Forwarded-For behind a proxy", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Forwarded-For", "203.0.113.1, 192.168.1.1")
		require.Equal(t, "203.0.113.1", httpx.ClientIPKeyExtractor(true)(req))
	})

	t.Run("falls back to X-Real-IP behind a proxy", func(t *testing.T) {
		req := requestFrom("192.168.1.1:12345")
		req.Header.Set("X-Real-IP", "203.0.113.2")
		require.Equal(t, "203.0.113.2", httpx.ClientIPKeyExtractor(true)(req))
	})

	t.Run("keeps RemoteAddr without a port", func(t *testing.T) {
		req := requestFrom("unix-socket")
		require.Equal(t, "unix-socket", httpx.ClientIPKeyExtractor(false)(req))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests under limit", func(t *testing.T) {
		cfg := httpx.RateLimitConfig{RequestsPerWindow: 5, Window: time.Second, Burst: 5}
		h := httpx.RateLimitByClient(cfg, false)(okHandler)

		for i := range 5 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitByClient(cfg, false)(okHandler)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.JSONEq(t, `{"success":false,"message":"Too many requests, please try again later"}`, rec.Body.String())
	})

	t.Run("different clients are tracked separately", func(t *testing.T) {
		cfg := httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
		h := httpx.RateLimitByClient(cfg, false)(okHandler)

		for range 2 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.2:12345"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty key is not limited", func(t *testing.T) {
		cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		h := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler)

		for range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestRateLimitBySubject(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitBySubject(cfg, false)(okHandler)

	withSubject := func(sub string) *http.Request {
		req := requestFrom("192.168.1.1:12345")
		return req.WithContext(httpx.WithIdentity(req.Context(), jwtx.Identity{SubjectID: sub}))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withSubject("alice"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withSubject("alice"))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Same address, different subject.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withSubject("bob"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Anonymous requests from that address have their own bucket.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestFrom("192.168.1.1:12345"))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitProfiles(t *testing.T) {
	profiles := map[string]httpx.RateLimitConfig{
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	}
	for name, cfg := range profiles {
		t.Run(name, func(t *testing.T) {
			require.Positive(t, cfg.RequestsPerWindow)
			require.Positive(t, cfg.Window)
			require.Positive(t, cfg.Burst)
		})
	}

	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("defaults without env", func(t *testing.T) {
		require.Equal(t, def, httpx.ParseRateLimitFromEnv("TEST", def))
	})

	t.Run("overrides all fields", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "200")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "250")

		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
			httpx.ParseRateLimitFromEnv("TEST", def))
	})

	t.Run("ignores invalid values", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "invalid")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "-10")
		t.Setenv("RATELIMIT_TEST_BURST", "0")

		require.Equal(t, def, httpx.ParseRateLimitFromEnv("TEST", def))
	})
}

func BenchmarkRateLimitManyClients(b *testing.B) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1000000, Window: time.Minute, Burst: 1000}
	h := httpx.RateLimitByClient(cfg, false)(okHandler)

	for i := 0; b.Loop(); i++ {
		req := requestFrom(fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255))
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
