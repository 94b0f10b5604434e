package app

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/memorylane/pkg/attempts"
	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
)

const (
	AlgHS256 = "HS256"
	AlgEdDSA = "EdDSA"

	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"

	LimiterMemory = "memory"
	LimiterRedis  = "redis"
)

// defaultAllowedOrigins are the local front-end dev servers.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:4000",
	"http://127.0.0.1:4000",
}

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 4000)

	Issuer           string        // Issuer claim for session tokens (default: memorylane)
	SigningAlgorithm string        // HS256 or EdDSA (default: HS256)
	SigningSecret    string        // Required for HS256, at least 32 bytes
	SigningKeyFile   string        // Required for EdDSA: PKCS8 PEM, optionally sealed
	MasterKeyPath    string        // Optional: master key opening a sealed signing key
	PrimaryTTL       time.Duration // Session lifetime for stored accounts (default: 15m)
	FallbackTTL      time.Duration // Session lifetime for demonstration accounts (default: 1h)
	FallbackEnabled  bool          // Enable the demonstration allow-list (default: true)
	CookieSecure     bool          // Secure attribute on the session cookie (default: true in prod)

	PasswordScheme     string // argon2id or bcrypt (default: argon2id)
	PasswordWorkFactor int    // 0 selects the scheme default
	VerifyConcurrency  int    // Parallel password verifications (default: GOMAXPROCS)

	LoginMaxAttempts  int           // Attempts per window per client (default: 12)
	LoginWindow       time.Duration // Login limiter window (default: 15m)
	LoginLimitBackend string        // memory or redis (default: memory)
	RedisAddr         string
	RedisPassword     string
	RedisDB           int

	StoreDriver   string // sqlite or mongo (default: sqlite)
	DatabaseFile  string // SQLite database path (default: memorylane.db)
	MongoURI      string
	MongoDatabase string

	AllowedOrigins       []string      // Browser origins allowed with credentials (CORS_ALLOWED_ORIGINS + FRONTEND_ORIGIN)
	TrustProxyHeaders    bool          // Honour X-Forwarded-For / X-Real-IP (default: false)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Limiter sweep interval (default: 5m)
}

func LoadConfig() Config {
	env := getEnvOrDefault("ENV", "dev")

	return Config{
		Env:       env,
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 4000),

		Issuer:           getEnvOrDefault("AUTH_ISSUER", "memorylane"),
		SigningAlgorithm: getEnvOrDefault("AUTH_SIGNING_ALGORITHM", AlgHS256),
		SigningSecret:    os.Getenv("AUTH_SIGNING_SECRET"),
		SigningKeyFile:   os.Getenv("AUTH_SIGNING_KEY_FILE"),
		MasterKeyPath:    os.Getenv("AUTH_MASTER_KEY_PATH"),
		PrimaryTTL:       getEnvDurationOrDefault("AUTH_PRIMARY_TTL", jwtx.DefaultPrimaryTTL),
		FallbackTTL:      getEnvDurationOrDefault("AUTH_FALLBACK_TTL", jwtx.DefaultFallbackTTL),
		FallbackEnabled:  getEnvBoolOrDefault("AUTH_FALLBACK_ENABLED", true),
		CookieSecure:     getEnvBoolOrDefault("COOKIE_SECURE", isProduction(env)),

		PasswordScheme:     getEnvOrDefault("AUTH_PASSWORD_SCHEME", string(cryptox.SchemeArgon2id)),
		PasswordWorkFactor: getEnvIntOrDefault("AUTH_PASSWORD_WORK_FACTOR", 0),
		VerifyConcurrency:  getEnvIntOrDefault("AUTH_VERIFY_CONCURRENCY", 0),

		LoginMaxAttempts:  getEnvIntOrDefault("LOGIN_LIMIT_MAX_ATTEMPTS", attempts.DefaultMaxAttempts),
		LoginWindow:       getEnvDurationOrDefault("LOGIN_LIMIT_WINDOW", attempts.DefaultWindow),
		LoginLimitBackend: getEnvOrDefault("LOGIN_LIMIT_BACKEND", LimiterMemory),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvIntOrDefault("REDIS_DB", 0),

		StoreDriver:   getEnvOrDefault("STORE_DRIVER", DriverSQLite),
		DatabaseFile:  getEnvOrDefault("DATABASE_FILE", "memorylane.db"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "memorylane"),

		AllowedOrigins:       loadAllowedOrigins(),
		TrustProxyHeaders:    getEnvBoolOrDefault("TRUST_PROXY_HEADERS", false),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 5*time.Minute),
	}
}

// ConfigurationError is a fatal startup misconfiguration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// Validate reports the first misconfiguration found. There is no built-in
// signing secret: a missing one stops startup.
func (c Config) Validate() error {
	switch c.SigningAlgorithm {
	case AlgHS256:
		if c.SigningSecret == "" {
			return &ConfigurationError{Field: "AUTH_SIGNING_SECRET", Reason: "required for HS256"}
		}
		if len(c.SigningSecret) < jwtx.MinSecretLength {
			return &ConfigurationError{
				Field:  "AUTH_SIGNING_SECRET",
				Reason: fmt.Sprintf("must be at least %d bytes", jwtx.MinSecretLength),
			}
		}
	case AlgEdDSA:
		if c.SigningKeyFile == "" {
			return &ConfigurationError{Field: "AUTH_SIGNING_KEY_FILE", Reason: "required for EdDSA"}
		}
	default:
		return &ConfigurationError{
			Field:  "AUTH_SIGNING_ALGORITHM",
			Reason: fmt.Sprintf("unknown algorithm %q (want %s or %s)", c.SigningAlgorithm, AlgHS256, AlgEdDSA),
		}
	}

	switch c.StoreDriver {
	case DriverSQLite, DriverMongo:
	default:
		return &ConfigurationError{Field: "STORE_DRIVER", Reason: fmt.Sprintf("unknown driver %q", c.StoreDriver)}
	}

	switch c.LoginLimitBackend {
	case LimiterMemory, LimiterRedis:
	default:
		return &ConfigurationError{Field: "LOGIN_LIMIT_BACKEND", Reason: fmt.Sprintf("unknown backend %q", c.LoginLimitBackend)}
	}

	switch cryptox.Scheme(c.PasswordScheme) {
	case cryptox.SchemeArgon2id, cryptox.SchemeBcrypt:
	default:
		return &ConfigurationError{Field: "AUTH_PASSWORD_SCHEME", Reason: fmt.Sprintf("unknown scheme %q", c.PasswordScheme)}
	}

	if c.PrimaryTTL <= 0 || c.FallbackTTL <= 0 {
		return &ConfigurationError{Field: "AUTH_PRIMARY_TTL/AUTH_FALLBACK_TTL", Reason: "must be positive"}
	}
	if c.LoginMaxAttempts <= 0 || c.LoginWindow <= 0 {
		return &ConfigurationError{Field: "LOGIN_LIMIT_MAX_ATTEMPTS/LOGIN_LIMIT_WINDOW", Reason: "must be positive"}
	}

	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return &ConfigurationError{Field: "CORS_ALLOWED_ORIGINS", Reason: "wildcard cannot be used with credentials"}
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return &ConfigurationError{Field: "CORS_ALLOWED_ORIGINS", Reason: fmt.Sprintf("origin %q needs an http or https scheme", origin)}
		}
	}

	return nil
}

// loadAllowedOrigins reads the comma separated CORS_ALLOWED_ORIGINS (default:
// local dev servers) and appends FRONTEND_ORIGIN when set.
func loadAllowedOrigins() []string {
	origins := getEnvOriginsOrDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	if front := httpx.NormalizeOrigin(os.Getenv("FRONTEND_ORIGIN")); front != "" && !slices.Contains(origins, front) {
		origins = append(origins, front)
	}
	return origins
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnvOriginsOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return slices.Clone(defaultValue)
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = httpx.NormalizeOrigin(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
