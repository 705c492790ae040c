package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sparkskytech/ieltsplan/internal/logger"
)

type Config struct {
	Addr              string        `envconfig:"ADDR" default:":8080"`
	Port              string        `envconfig:"PORT"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"INFO"`
	LogColors         bool          `envconfig:"LOG_COLORS" default:"true"`
	RenderWorkerCount int           `envconfig:"RENDER_WORKER_COUNT" default:"2"`
	RenderQueueSize   int           `envconfig:"RENDER_QUEUE_SIZE" default:"16"`
	RenderTimeout     time.Duration `envconfig:"RENDER_TIMEOUT" default:"20s"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	RateLimitRPS      float64       `envconfig:"RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst    int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	TrustProxy        bool          `envconfig:"TRUST_PROXY" default:"false"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing. PORT, when set, overrides ADDR so the
// server binds the way PaaS hosts expect.
func Load() (Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.Port != "" {
		cfg.Addr = ":" + strings.TrimPrefix(cfg.Port, ":")
	}
	return cfg, nil
}

// Validate checks that the configuration can run a server.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.RenderWorkerCount <= 0 {
		problems = append(problems, "RENDER_WORKER_COUNT must be positive")
	}
	if c.RenderQueueSize <= 0 {
		problems = append(problems, "RENDER_QUEUE_SIZE must be positive")
	}
	if c.RenderTimeout <= 0 {
		problems = append(problems, "RENDER_TIMEOUT must be positive")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}
	if c.RenderTimeout > 0 && c.RequestTimeout > 0 && c.RenderTimeout >= c.RequestTimeout {
		// The render deadline has to expire before the request deadline.
		problems = append(problems, "RENDER_TIMEOUT must be shorter than REQUEST_TIMEOUT")
	}
	if c.RateLimitRPS < 0 {
		problems = append(problems, "RATE_LIMIT_RPS cannot be negative")
	}
	if c.RateLimitBurst < 0 {
		problems = append(problems, "RATE_LIMIT_BURST cannot be negative")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
