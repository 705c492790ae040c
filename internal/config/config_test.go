package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkskytech/ieltsplan/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		LogLevel:          "INFO",
		LogColors:         true,
		RenderWorkerCount: 2,
		RenderQueueSize:   16,
		RenderTimeout:     20 * time.Second,
		RequestTimeout:    30 * time.Second,
		RateLimitRPS:      5,
		RateLimitBurst:    10,
	}
}

// unsetEnv removes key for the duration of the test. An empty value is not the same as
// unset for envconfig, which only applies defaults to missing keys.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
		}
	})
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_ZeroRateLimitAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimitRPS = 0
	cfg.RateLimitBurst = 0
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		message string
	}{
		{
			name:    "empty addr",
			mutate:  func(c *config.Config) { c.Addr = "  " },
			message: "ADDR cannot be empty",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *config.Config) { c.LogLevel = "TRACE" },
			message: "LOG_LEVEL",
		},
		{
			name:    "no render workers",
			mutate:  func(c *config.Config) { c.RenderWorkerCount = 0 },
			message: "RENDER_WORKER_COUNT must be positive",
		},
		{
			name:    "no render queue",
			mutate:  func(c *config.Config) { c.RenderQueueSize = -1 },
			message: "RENDER_QUEUE_SIZE must be positive",
		},
		{
			name:    "zero render timeout",
			mutate:  func(c *config.Config) { c.RenderTimeout = 0 },
			message: "RENDER_TIMEOUT must be positive",
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *config.Config) { c.RequestTimeout = 0 },
			message: "REQUEST_TIMEOUT must be positive",
		},
		{
			name: "render timeout not below request timeout",
			mutate: func(c *config.Config) {
				c.RenderTimeout = 30 * time.Second
				c.RequestTimeout = 30 * time.Second
			},
			message: "RENDER_TIMEOUT must be shorter than REQUEST_TIMEOUT",
		},
		{
			name:    "negative rps",
			mutate:  func(c *config.Config) { c.RateLimitRPS = -1 },
			message: "RATE_LIMIT_RPS cannot be negative",
		},
		{
			name:    "negative burst",
			mutate:  func(c *config.Config) { c.RateLimitBurst = -3 },
			message: "RATE_LIMIT_BURST cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "PORT", "LOG_LEVEL", "LOG_COLORS", "RENDER_WORKER_COUNT",
		"RENDER_QUEUE_SIZE", "RENDER_TIMEOUT", "REQUEST_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "TRUST_PROXY"} {
		unsetEnv(t, key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.LogColors)
	assert.Equal(t, 2, cfg.RenderWorkerCount)
	assert.Equal(t, 16, cfg.RenderQueueSize)
	assert.Equal(t, 20*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxy)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:9000")
	unsetEnv(t, "PORT")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RENDER_WORKER_COUNT", "4")
	t.Setenv("RENDER_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.RenderWorkerCount)
	assert.Equal(t, 5*time.Second, cfg.RenderTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_PortOverridesAddr(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("PORT", "5000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Addr)
}

func TestLoad_InvalidInteger(t *testing.T) {
	t.Setenv("RENDER_QUEUE_SIZE", "many")

	_, err := config.Load()
	assert.Error(t, err)
}
