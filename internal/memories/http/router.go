package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/metrics"
	"github.com/aussiebroadwan/memorylane/internal/memories/service"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"

	_ "github.com/aussiebroadwan/memorylane/api/memorylane" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RoleAdmin is the role required by the admin routes.
const RoleAdmin = "admin"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	gate         *httpx.Gate
	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	trustProxy   bool

	store   store.Store
	metrics *metrics.Metrics

	LoginService  *service.LoginService
	MemoryService *service.MemoryService
}

// Options tune the transport around the handlers.
type Options struct {
	// TrustProxy makes client keys honour X-Forwarded-For and X-Real-IP.
	// Enable it only behind a proxy that sets them.
	TrustProxy bool

	// AllowedOrigins may call the API from a browser with credentials.
	AllowedOrigins []string

	// HSTS adds Strict-Transport-Security to every response.
	HSTS bool
}

// NewRouter builds a router.
func NewRouter(
	gate *httpx.Gate,
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		gate:         gate,
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      m,
		logger:       logger,
		trustProxy:   opts.TrustProxy,
	}

	// CORS sits inside the logger so preflights are logged, and in front of
	// the mux so they are answered for every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.SecurityHeaders(opts.HSTS),
		httpx.CORS(opts.AllowedOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerAdmin()
	r.registerMemories()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", httpx.NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Memory Lane API
//	@version					0.1.0
//	@description				Share memories with friends. Sessions are JWTs carried in an HttpOnly cookie set by /api/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/memorylane
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:4000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						token
//	@description				Session token set by POST /api/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSession() {
	// POST /api/login is guarded by the login-attempt limiter inside
	// LoginService; a route limiter in front would hide its answers.
	loginHandler := &LoginHandler{
		LoginService: r.LoginService,
		Cookie:       r.gate.Cookie,
		ClientKey:    httpx.ClientIPKeyExtractor(r.trustProxy),
	}
	r.Mux.Handle("POST /api/login", loginHandler)

	logoutHandler := &LogoutHandler{Cookie: r.gate.Cookie}
	r.Mux.Handle("POST /api/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByClient(httpx.ModerateLimit, r.trustProxy),
		),
	)

	r.Mux.Handle("GET /api/auth/status",
		httpx.Chain(http.HandlerFunc(StatusHandler),
			httpx.AuthnMiddleware(r.gate),
			httpx.RateLimitBySubject(httpx.LenientLimit, r.trustProxy),
		),
	)
}

func (r *Router) registerAdmin() {
	r.Mux.Handle("GET /admin",
		httpx.Chain(http.HandlerFunc(AdminHandler),
			httpx.AuthnMiddleware(r.gate),
			httpx.AuthzMiddleware(r.gate, RoleAdmin),
			httpx.RateLimitBySubject(httpx.ModerateLimit, r.trustProxy),
		),
	)
}

func (r *Router) registerMemories() {
	h := &MemoriesHandler{MemoryService: r.MemoryService}

	// Anonymous submissions are allowed; a session only sets the owner.
	r.Mux.Handle("POST /api/e",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.OptionalSession(r.gate),
			httpx.RateLimitByClient(httpx.ModerateLimit, r.trustProxy),
		),
	)
	r.Mux.Handle("GET /api/e",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByClient(httpx.LenientLimit, r.trustProxy),
		),
	)
	r.Mux.Handle("GET /api/memories",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			httpx.AuthnMiddleware(r.gate),
			httpx.RateLimitBySubject(httpx.LenientLimit, r.trustProxy),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByClient(httpx.LenientLimit, r.trustProxy),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByClient(httpx.LenientLimit, r.trustProxy),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics",
			httpx.Chain(r.metrics.Handler(),
				httpx.RateLimitByClient(httpx.PublicLimit, r.trustProxy),
			),
		)
	}
}
