package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket refilled at RequestsPerWindow per Window.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Route profiles. Each can be overridden with
// RATELIMIT_{MODERATE,LENIENT,PUBLIC}_{REQUESTS,WINDOW_SEC,BURST}.
var (
	// ModerateLimit guards authenticated writes.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 30, Window: time.Minute, Burst: 30}

	// LenientLimit guards authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 120}

	// PublicLimit guards health and documentation routes.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv overrides def from RATELIMIT_{prefix}_REQUESTS,
// RATELIMIT_{prefix}_WINDOW_SEC and RATELIMIT_{prefix}_BURST. Values that are
// not positive integers are ignored.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor groups requests for limiting. An empty key disables limiting
// for that request.
type KeyExtractor func(*http.Request) string

// ClientIPKeyExtractor keys by the peer address. Forwarding headers
// (X-Forwarded-For, then X-Real-IP) are honoured only when trustProxy is set,
// otherwise any client could pick its own key.
func ClientIPKeyExtractor(trustProxy bool) KeyExtractor {
	return func(r *http.Request) string {
		if trustProxy {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
			if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
				return xri
			}
		}

		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return r.RemoteAddr
		}
		return host
	}
}

// SubjectKeyExtractor keys by the session subject, if one is attached.
func SubjectKeyExtractor(r *http.Request) string {
	if id, ok := IdentityFromContext(r.Context()); ok {
		return id.SubjectID
	}
	return ""
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type routeLimiter struct {
	cfg   RateLimitConfig
	limit rate.Limit

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newRouteLimiter(cfg RateLimitConfig) *routeLimiter {
	return &routeLimiter{
		cfg:       cfg,
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// reserve takes a token for key and reports the wait when none is available.
func (rl *routeLimiter) reserve(key string, now time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Buckets idle for a whole window are full again and can be dropped.
	if now.Sub(rl.lastSweep) >= rl.cfg.Window {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= rl.cfg.Window {
				delete(rl.buckets, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rl.limit, rl.cfg.Burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}
	r := b.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, delay
}

// RateLimitMiddleware limits requests per key with a token bucket.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyExtractor) Middleware {
	rl := newRouteLimiter(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			ok, delay := rl.reserve(k, time.Now())
			if !ok {
				SetRetryAfter(w, delay)
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", cfg.Window.String())

				slogx.FromContext(r.Context()).Warn("rate limit exceeded", "key", k, "retry_after", delay)
				ErrAPITooManyRequests.WriteError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByClient limits by client address.
func RateLimitByClient(cfg RateLimitConfig, trustProxy bool) Middleware {
	return RateLimitMiddleware(cfg, ClientIPKeyExtractor(trustProxy))
}

// RateLimitBySubject limits by session subject, falling back to the client
// address for anonymous requests.
func RateLimitBySubject(cfg RateLimitConfig, trustProxy bool) Middleware {
	return RateLimitMiddleware(cfg, func(r *http.Request) string {
		if s := SubjectKeyExtractor(r); s != "" {
			return "sub:" + s
		}
		return "ip:" + ClientIPKeyExtractor(trustProxy)(r)
	})
}
