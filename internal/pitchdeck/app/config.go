package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Env       string // Environment (dev, staging, prod) (default: dev)
	Port      int    // HTTP server port (default: 5099)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	DatabaseFile string // Path to the SQLite database file (default: ./pitchdeck.db)

	JWTSecret    string        // Required: HS256 signing secret
	JWTIssuer    string        // Issuer claim for tokens (default: pitchdeck)
	JWTExpiresIn time.Duration // Token lifetime, accepts "1d" style values (default: 24h)
	BcryptCost   int           // bcrypt work factor (default: 12)

	// FrontendURL receives the Google sign-in redirects.
	FrontendURL string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	// TrustedProxies are the peers whose forwarding headers name the client
	// for rate limiting. Empty by default.
	TrustedProxies []netip.Prefix

	SeedFile       string // Optional: YAML fixture applied at startup
	MetricsEnabled bool   // Serve /metrics and record request metrics (default: true)

	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A .env file (or
// the file named by ENV_FILE) is loaded first; variables already set in the
// environment win.
func LoadConfig() (Config, error) {
	envFile := getEnvOrDefault("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	// Rate limit profiles are read at package init, before the .env file
	// was loaded.
	httpx.StrictLimit = httpx.ParseRateLimitFromEnv("STRICT", httpx.StrictLimit)
	httpx.ModerateLimit = httpx.ParseRateLimitFromEnv("MODERATE", httpx.ModerateLimit)
	httpx.LenientLimit = httpx.ParseRateLimitFromEnv("LENIENT", httpx.LenientLimit)
	httpx.PublicLimit = httpx.ParseRateLimitFromEnv("PUBLIC", httpx.PublicLimit)

	cfg := Config{
		Env:          getEnvOrDefault("ENV", "dev"),
		Port:         getEnvIntOrDefault("PORT", 5099),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "json"),
		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "pitchdeck.db"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTIssuer:    getEnvOrDefault("JWT_ISSUER", "pitchdeck"),
		JWTExpiresIn: getEnvDurationOrDefault("JWT_EXPIRES_IN", jwtx.DefaultTokenTTL),
		BcryptCost:   getEnvIntOrDefault("BCRYPT_COST", 12),

		FrontendURL: strings.TrimSuffix(getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"), "/"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleCallbackURL:  os.Getenv("GOOGLE_CALLBACK_URL"),

		SeedFile:       os.Getenv("SEED_FILE"),
		MetricsEnabled: getEnvBoolOrDefault("METRICS_ENABLED", true),

		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	proxies, err := httpx.ParseTrustedProxies(os.Getenv("TRUSTED_PROXIES"))
	if err != nil {
		return Config{}, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	cfg.TrustedProxies = proxies

	if cfg.GoogleCallbackURL == "" {
		cfg.GoogleCallbackURL = fmt.Sprintf("http://localhost:%d/auth/google/callback", cfg.Port)
	}

	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.JWTSecret) == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q is not one of json, text", c.LogFormat))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}

	return errors.Join(errs...)
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

	if b, err := strconv.ParseBool(value); err == nil {
		return b
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

	// Day suffix, as in "1d" or "7d"
	if days, ok := strings.CutSuffix(value, "d"); ok {
		if n, err := strconv.Atoi(days); err == nil {
			return time.Duration(n) * 24 * time.Hour
		}
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
