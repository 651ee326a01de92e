/*
Package config handles crawler-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly
typed Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: once loaded, configuration is read-only.
  - DI-Friendly: its values are passed to the pool, clients and orchestrator
    via constructors, not globals.
  - Zero Hidden State: no module-level variables store config.

This ensures the crawler is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/filmcatalog/internal/platform/constants"
	"github.com/taibuivan/filmcatalog/internal/platform/validate"
)

// # Configuration Schema

// Config holds all runtime configuration for the crawler.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Relational Database. The scheme selects the dialect: "mysql://" means
	// MySQL, anything else means PostgreSQL.
	DatabaseURL string `env:"DATABASE_URL,required"`

	// StartYear/StopYear bound the crawl range [StartYear, StopYear).
	// StopYear of 0 resolves to the current year + 1 at Load time.
	StartYear int `env:"START_YEAR" envDefault:"1887"`
	StopYear  int `env:"STOP_YEAR"  envDefault:"0"`

	// MaxConnections is the sole concurrency/throughput knob: it sizes the
	// database pool and bounds HTTP fan-out.
	MaxConnections int `env:"MAX_CONNECTIONS" envDefault:"50"`

	// RetryInterval is the sleep between retries of a transient upstream
	// failure (HTTP 522). RetryIntervalSeconds of 0 resolves to the default.
	RetryIntervalSeconds int `env:"RETRY_INTERVAL_SECONDS" envDefault:"0"`

	// OmdbAPIKey is sent as the apikey query parameter when set; the OMDb
	// endpoint accepts keyless requests at a lower rate limit.
	OmdbAPIKey string `env:"OMDB_API_KEY" envDefault:""`
}

// # Configuration Loading

// Load parses environment variables into a [Config], applies dynamic
// defaults, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.StopYear == 0 {
		cfg.StopYear = time.Now().Year() + 1
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RetryInterval returns the configured retry interval, or the package
// default when unset.
func (c *Config) RetryInterval() time.Duration {
	if c.RetryIntervalSeconds <= 0 {
		return constants.RetryInterval
	}
	return time.Duration(c.RetryIntervalSeconds) * time.Second
}

// Validate enforces the supported bounds on the crawl range and the
// concurrency knob.
func (c *Config) Validate() error {
	v := &validate.Validator{}

	v.Range("start_year", c.StartYear, constants.MinSupportedYear, time.Now().Year())
	v.Custom("stop_year", c.StopYear <= c.StartYear, "stop_year must be greater than start_year")
	v.Custom("max_connections", c.MaxConnections <= 0, "max_connections must be positive")

	return v.Err()
}

// IsDevelopment reports whether the crawler is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
