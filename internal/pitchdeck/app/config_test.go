package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/pitchdeck/pkg/httpx"
	"github.com/aussiebroadwan/pitchdeck/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "DATABASE_FILE",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRES_IN", "BCRYPT_COST",
	"FRONTEND_URL", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_CALLBACK_URL",
	"SEED_FILE", "METRICS_ENABLED", "SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
	"RATELIMIT_STRICT_REQUESTS", "TRUSTED_PROXIES",
}

// cleanEnv unsets every config variable for the duration of the test and
// points ENV_FILE at a file that does not exist.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	strict, moderate, lenient, public := httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit
	t.Cleanup(func() {
		httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit = strict, moderate, lenient, public
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 5099, cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "pitchdeck.db", cfg.DatabaseFile)
	require.Equal(t, "pitchdeck", cfg.JWTIssuer)
	require.Equal(t, jwtx.DefaultTokenTTL, cfg.JWTExpiresIn)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	require.Equal(t, "http://localhost:5099/auth/google/callback", cfg.GoogleCallbackURL)
	require.True(t, cfg.MetricsEnabled)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
	require.Empty(t, cfg.TrustedProxies)

	// JWT_SECRET has no default.
	require.ErrorContains(t, cfg.Validate(), "JWT_SECRET is required")
}

func TestLoadConfigOverrides(t *testing.T) {
	cleanEnv(t)

	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "7d")
	t.Setenv("FRONTEND_URL", "https://app.example.com/")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2")
	t.Setenv("BCRYPT_COST", "not-a-number")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "500")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 7*24*time.Hour, cfg.JWTExpiresIn)
	require.Equal(t, "https://app.example.com", cfg.FrontendURL)
	require.Equal(t, "http://localhost:8080/auth/google/callback", cfg.GoogleCallbackURL)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, 2*time.Minute, cfg.ShutdownGracePeriod)
	require.Equal(t, 12, cfg.BcryptCost)
	require.Equal(t, 500, httpx.StrictLimit.RequestsPerWindow)
	require.Len(t, cfg.TrustedProxies, 2)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsBadTrustedProxies(t *testing.T) {
	cleanEnv(t)
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/33")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "TRUSTED_PROXIES")
}

func TestLoadConfigDotenv(t *testing.T) {
	cleanEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nJWT_ISSUER=file-issuer\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("JWT_ISSUER", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "from-file", cfg.JWTSecret)
	require.Equal(t, "from-env", cfg.JWTIssuer, "environment wins over the dotenv file")
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Port:         5099,
		LogFormat:    "json",
		JWTSecret:    "secret",
		JWTExpiresIn: time.Hour,
		BcryptCost:   10,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"blank secret", func(c *Config) { c.JWTSecret = "   " }, "JWT_SECRET is required"},
		{"zero ttl", func(c *Config) { c.JWTExpiresIn = 0 }, "JWT_EXPIRES_IN must be positive"},
		{"cost too low", func(c *Config) { c.BcryptCost = 1 }, "BCRYPT_COST must be between"},
		{"cost too high", func(c *Config) { c.BcryptCost = 40 }, "BCRYPT_COST must be between"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, `LOG_FORMAT "xml"`},
		{"port", func(c *Config) { c.Port = 70000 }, "PORT 70000 is out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
