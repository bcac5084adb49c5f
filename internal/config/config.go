// ABOUTME: Adapter configuration: server URL, credential, environment, timeout.
// ABOUTME: Defaults, then optional YAML file, then environment variables.

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingURL indicates no copyparty server URL was configured.
	ErrMissingURL = errors.New("copyparty server URL is required (set COPYPARTY_URL)")

	// ErrBadEnvironment indicates an unknown deployment environment.
	ErrBadEnvironment = errors.New("environment must be development or production")
)

// Config is the adapter's whole configuration. It is built once at
// process start and never mutated.
type Config struct {
	// URL is the copyparty base URL. Required.
	URL string `env:"COPYPARTY_URL" yaml:"url"`

	// Password authenticates against the server when set. copyparty
	// uses password-only auth unless username mode is enabled.
	Password string `env:"COPYPARTY_PASSWORD" yaml:"password"`

	// Environment is "development" or "production".
	Environment string `env:"COPYPARTY_ENV" yaml:"environment"`

	// Timeout bounds every HTTP request.
	Timeout time.Duration `env:"COPYPARTY_TIMEOUT" yaml:"timeout"`
}

// Default returns a Config with everything except the URL filled in.
func Default() *Config {
	return &Config{
		Environment: "development",
		Timeout:     60 * time.Second,
	}
}

// Load builds the configuration. Precedence, lowest to highest:
// defaults, the YAML file at path (skipped when path is empty),
// environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for startup-fatal problems.
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}
	switch c.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("%w: got %q", ErrBadEnvironment, c.Environment)
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	return nil
}

// Production reports whether the adapter runs in production mode.
func (c *Config) Production() bool {
	return c.Environment == "production"
}
