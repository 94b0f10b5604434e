package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/memorylane/internal/memories/http"
	"github.com/aussiebroadwan/memorylane/internal/memories/metrics"
	"github.com/aussiebroadwan/memorylane/internal/memories/service"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/attempts"
	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/memorylane/internal/memories/app.BuildVersion=...".
var BuildVersion = "v0.1.0"


// Application owns every long-lived dependency of the memorylane server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db      store.Store
	signer  jwtx.KeyPair
	metrics *metrics.Metrics
	redis   *redis.Client
	limiter attempts.Limiter

	loginService        *service.LoginService
	memoryService       *service.MemoryService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and initializes all dependencies.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg:     cfg,
		metrics: metrics.New(),
		logger: slogx.New(slogx.Config{
			Service: "memorylane",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := InitSigner(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.signer = signer

	ctx := context.Background()
	db, err := OpenStore(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if err := app.initLimiter(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		app.closeBackends()
		return nil, err
	}
	app.warnIfNoAccounts(ctx)
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.housekeepingService != nil {
		app.housekeepingService.Start()
	}

	app.logger.Info("memorylane starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
		"login_limiter", app.cfg.LoginLimitBackend,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down memorylane...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.housekeepingService != nil {
		app.housekeepingService.Stop()
	}

	if err := app.closeBackends(); err != nil {
		return err
	}

	app.logger.Info("memorylane stopped")
	return nil
}

func (app *Application) closeBackends() error {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}
	return nil
}

// warnIfNoAccounts reports whether nobody could log in: the store holds no
// accounts and the demonstration accounts are off.
func (app *Application) warnIfNoAccounts(ctx context.Context) bool {
	if app.cfg.FallbackEnabled {
		return false
	}

	empty, err := app.db.Users().IsEmpty(ctx)
	if err != nil {
		app.logger.Warn("could not count stored accounts", "error", err)
		return false
	}
	if empty {
		app.logger.Warn("no stored accounts and demonstration accounts disabled; nobody can log in",
			"hint", "provision one with memoriesctl user add")
	}
	return empty
}

// initLimiter selects the login-attempt backend. The memory backend needs
// the housekeeping sweep; Redis expires keys on its own.
func (app *Application) initLimiter(ctx context.Context) error {
	limits := attempts.Config{Window: app.cfg.LoginWindow, MaxAttempts: app.cfg.LoginMaxAttempts}

	switch app.cfg.LoginLimitBackend {
	case LimiterRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
			DB:       app.cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return fmt.Errorf("failed to reach redis at %s: %w", app.cfg.RedisAddr, err)
		}

		app.redis = client
		app.limiter = attempts.NewRedisLimiter(client, limits, "")

	default:
		mem := attempts.NewMemoryLimiter(limits)
		app.limiter = mem
		app.housekeepingService = service.NewHousekeepingService(
			app.logger,
			app.cfg.HousekeepingInterval,
			map[string]service.Sweeper{"login_attempts": mem},
		)
	}

	app.logger.Info("login limiter ready",
		"backend", app.cfg.LoginLimitBackend,
		"max_attempts", limits.MaxAttempts,
		"window", limits.Window,
	)
	return nil
}

func (app *Application) initServices() error {
	hasher, err := cryptox.NewPasswordHasher(cryptox.Scheme(app.cfg.PasswordScheme), app.cfg.PasswordWorkFactor)
	if err != nil {
		return err
	}

	pool := cryptox.NewVerifyPool(app.cfg.VerifyConcurrency)
	pool.OnVerify = app.metrics.ObservePasswordVerify

	var fallback []service.FallbackAccount
	if app.cfg.FallbackEnabled {
		fallback = service.DefaultFallbackAccounts()
		app.logger.Warn("demonstration accounts enabled", "count", len(fallback))
	}

	app.loginService = &service.LoginService{
		Store: app.db,
		Issuer: &jwtx.Issuer{
			Signer:      app.signer,
			Issuer:      app.cfg.Issuer,
			PrimaryTTL:  app.cfg.PrimaryTTL,
			FallbackTTL: app.cfg.FallbackTTL,
		},
		Limiter:  app.limiter,
		Pool:     pool,
		Hasher:   hasher,
		Fallback: fallback,
		Metrics:  app.metrics,
	}
	app.memoryService = &service.MemoryService{Store: app.db}
	return nil
}

func (app *Application) initHTTP() {
	gate := &httpx.Gate{
		Cookie:   httpx.SessionCookie{Secure: app.cfg.CookieSecure},
		Verifier: app.signer.Verifier(jwtx.VerifyOptions{Issuer: app.cfg.Issuer}),
		OnReject: app.metrics.RecordGateRejection,
	}

	router := httpapi.NewRouter(
		gate,
		app.signer,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
		httpapi.Options{
			TrustProxy:     app.cfg.TrustProxyHeaders,
			AllowedOrigins: app.cfg.AllowedOrigins,
			HSTS:           app.cfg.CookieSecure,
		},
	)
	router.LoginService = app.loginService
	router.MemoryService = app.memoryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
