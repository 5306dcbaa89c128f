package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the mood tracker service.
// Environment variables are automatically parsed from the MOOD_TRACKER_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store driver: csv (default, compatible with existing data files),
	// sqlite or postgres.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"csv"`

	// CSV Configuration
	CSVPath string `envconfig:"CSV_PATH" default:"mood_data.csv"`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Health probing
	HealthIntervalSeconds int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	ProbeTimeoutSeconds   int `envconfig:"PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates StoreDriver and derives driver-specific paths
// when they are left empty.
func (c *Config) ResolveDefaults() error {
	allowed := map[string]bool{"csv": true, "sqlite": true, "postgres": true}
	if !allowed[c.StoreDriver] {
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	if c.StoreDriver == "sqlite" && c.SQLitePath == "" {
		c.SQLitePath = "mood_data.db"
	}
	if c.StoreDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=postgres")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with MOOD_TRACKER_
// Example: MOOD_TRACKER_HTTP_PORT, MOOD_TRACKER_CSV_PATH
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MOOD_TRACKER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Str("csv_path", cfg.CSVPath).
		Int("port", cfg.HTTPPort).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		Environment:           EnvTesting,
		HTTPPort:              8080,
		StoreDriver:           "csv",
		CSVPath:               "mood_data.csv",
		HealthIntervalSeconds: 30,
		ProbeTimeoutSeconds:   2,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
