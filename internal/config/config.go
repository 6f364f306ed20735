package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/ricirt/infra-simulation-api/internal/buildinfo"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment yields a runnable service.
type Config struct {
	// Server
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Build metadata, logged and exported once at startup. Resolved by
	// buildinfo so a set-but-empty variable stays empty here too.
	AppVersion string
	GitSHA     string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return LoadFrom(buildinfo.OSEnvironment{}.Environ())
}

// LoadFrom reads configuration from the given key/value set instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	info := buildinfo.Read(buildinfo.StaticEnvironment(environ))
	cfg.AppVersion, cfg.GitSHA = info.Version, info.Commit

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// HTTPAddr returns the listen address for the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
