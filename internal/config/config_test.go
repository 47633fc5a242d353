package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, DevJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "ashtaBanjanDB", cfg.Mongo.Database)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("RATE_LIMIT_BACKEND", "Memory")
	t.Setenv("MONGO_CONNECT_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.Equal(t, 15*time.Second, cfg.Mongo.ConnectTimeout())
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "zero")

	_, err := Load()
	assert.ErrorContains(t, err, "REDIS_DB")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:       AppConfig{Env: "development"},
			Mongo:     MongoConfig{URI: "mongodb://localhost", Database: "db"},
			Auth:      AuthConfig{JWTSecret: "secret", AccessTokenTTLMinutes: 60, PasswordResetTTLMinutes: 30},
			RateLimit: RateLimitConfig{Backend: "memory", Requests: 10, WindowSeconds: 60},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("dev secret in production", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Auth.JWTSecret = DevJWTSecret
		assert.Error(t, cfg.Validate())
	})

	t.Run("blank secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.JWTSecret = "  "
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown rate limit backend", func(t *testing.T) {
		cfg := base()
		cfg.RateLimit.Backend = "memcached"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive rate limit", func(t *testing.T) {
		for _, backend := range []string{"redis", "memory"} {
			cfg := base()
			cfg.RateLimit.Backend = backend
			cfg.RateLimit.Requests = 0
			assert.ErrorContains(t, cfg.Validate(), "RATE_LIMIT_REQUESTS", backend)

			cfg = base()
			cfg.RateLimit.Backend = backend
			cfg.RateLimit.WindowSeconds = -1
			assert.ErrorContains(t, cfg.Validate(), "RATE_LIMIT_WINDOW_SECONDS", backend)
		}
	})

	t.Run("rate limit off ignores budget", func(t *testing.T) {
		cfg := base()
		cfg.RateLimit = RateLimitConfig{Backend: "off"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("non-positive ttls", func(t *testing.T) {
		cfg := base()
		cfg.Auth.AccessTokenTTLMinutes = 0
		assert.ErrorContains(t, cfg.Validate(), "AUTH_ACCESS_TOKEN_TTL_MINUTES")

		cfg = base()
		cfg.Auth.PasswordResetTTLMinutes = -5
		assert.ErrorContains(t, cfg.Validate(), "AUTH_PASSWORD_RESET_TTL_MINUTES")
	})

	t.Run("missing mongo database", func(t *testing.T) {
		cfg := base()
		cfg.Mongo.Database = ""
		assert.Error(t, cfg.Validate())
	})
}
