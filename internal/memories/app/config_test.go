package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "app-test-secret-0123456789abcdefghij"

func validConfig() Config {
	return Config{
		Issuer:            "memorylane",
		SigningAlgorithm:  AlgHS256,
		SigningSecret:     testSecret,
		PrimaryTTL:        15 * time.Minute,
		FallbackTTL:       time.Hour,
		PasswordScheme:    "argon2id",
		LoginMaxAttempts:  12,
		LoginWindow:       15 * time.Minute,
		LoginLimitBackend: LimiterMemory,
		StoreDriver:       DriverSQLite,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "AUTH_ISSUER", "AUTH_SIGNING_ALGORITHM", "AUTH_PRIMARY_TTL", "AUTH_FALLBACK_TTL",
		"AUTH_FALLBACK_ENABLED", "COOKIE_SECURE", "LOGIN_LIMIT_MAX_ATTEMPTS", "LOGIN_LIMIT_WINDOW",
		"LOGIN_LIMIT_BACKEND", "STORE_DRIVER", "DATABASE_FILE", "TRUST_PROXY_HEADERS",
		"CORS_ALLOWED_ORIGINS", "FRONTEND_ORIGIN",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 4000, cfg.Port)
	require.Equal(t, "memorylane", cfg.Issuer)
	require.Equal(t, AlgHS256, cfg.SigningAlgorithm)
	require.Equal(t, 15*time.Minute, cfg.PrimaryTTL)
	require.Equal(t, time.Hour, cfg.FallbackTTL)
	require.True(t, cfg.FallbackEnabled)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 12, cfg.LoginMaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.LoginWindow)
	require.Equal(t, LimiterMemory, cfg.LoginLimitBackend)
	require.Equal(t, DriverSQLite, cfg.StoreDriver)
	require.Equal(t, "memorylane.db", cfg.DatabaseFile)
	require.False(t, cfg.TrustProxyHeaders)
	require.Equal(t, defaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("COOKIE_SECURE", "")
	t.Setenv("AUTH_FALLBACK_ENABLED", "false")
	t.Setenv("AUTH_PRIMARY_TTL", "5m")
	t.Setenv("LOGIN_LIMIT_WINDOW", "30")
	t.Setenv("LOGIN_LIMIT_MAX_ATTEMPTS", "not-a-number")
	t.Setenv("TRUST_PROXY_HEADERS", "1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example/, ,https://B.example")
	t.Setenv("FRONTEND_ORIGIN", "https://front.example/")

	cfg := LoadConfig()
	require.True(t, cfg.CookieSecure)
	require.False(t, cfg.FallbackEnabled)
	require.Equal(t, 5*time.Minute, cfg.PrimaryTTL)
	require.Equal(t, 30*time.Minute, cfg.LoginWindow)
	require.Equal(t, 12, cfg.LoginMaxAttempts)
	require.True(t, cfg.TrustProxyHeaders)
	require.Equal(t, []string{"https://a.example", "https://b.example", "https://front.example"}, cfg.AllowedOrigins)
}

func TestFrontendOriginNotDuplicated(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("FRONTEND_ORIGIN", "http://localhost:3000")

	require.Equal(t, defaultAllowedOrigins, LoadConfig().AllowedOrigins)
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"missing secret", func(c *Config) { c.SigningSecret = "" }, "AUTH_SIGNING_SECRET"},
		{"short secret", func(c *Config) { c.SigningSecret = "too-short" }, "AUTH_SIGNING_SECRET"},
		{"unknown algorithm", func(c *Config) { c.SigningAlgorithm = "none" }, "AUTH_SIGNING_ALGORITHM"},
		{"eddsa without key", func(c *Config) { c.SigningAlgorithm = AlgEdDSA }, "AUTH_SIGNING_KEY_FILE"},
		{"unknown driver", func(c *Config) { c.StoreDriver = "postgres" }, "STORE_DRIVER"},
		{"unknown limiter", func(c *Config) { c.LoginLimitBackend = "memcached" }, "LOGIN_LIMIT_BACKEND"},
		{"unknown scheme", func(c *Config) { c.PasswordScheme = "md5" }, "AUTH_PASSWORD_SCHEME"},
		{"zero ttl", func(c *Config) { c.FallbackTTL = 0 }, "AUTH_PRIMARY_TTL/AUTH_FALLBACK_TTL"},
		{"zero attempts", func(c *Config) { c.LoginMaxAttempts = 0 }, "LOGIN_LIMIT_MAX_ATTEMPTS/LOGIN_LIMIT_WINDOW"},
		{"wildcard origin", func(c *Config) { c.AllowedOrigins = []string{"*"} }, "CORS_ALLOWED_ORIGINS"},
		{"origin without scheme", func(c *Config) { c.AllowedOrigins = []string{"localhost:3000"} }, "CORS_ALLOWED_ORIGINS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			require.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
