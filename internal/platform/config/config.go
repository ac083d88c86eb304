// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles runtime settings for the seeding tools and the
development backend.

It leverages 'caarlos0/env' to map OS environment variables into strongly-typed
Go structs, providing early validation and default values.

Usage:

	cfg, err := config.LoadClient()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded and validated, configuration is read-only.
  - DI-Friendly: Passed to the REST client and the server via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrIncomplete is returned when the endpoint or credential is missing.
var ErrIncomplete = errors.New("config: endpoint and credential are required")

// # Client Configuration

// Client holds the settings shared by the importer and the verifier.
type Client struct {

	// Backend location and credential. The credential is sent both as the
	// apikey header and as the bearer token.
	Endpoint   string `env:"SEED_ENDPOINT"`
	Credential string `env:"SEED_CREDENTIAL"`

	// Collection names on the backend.
	SeriesCollection string `env:"SEED_SERIES_COLLECTION" envDefault:"labubu_series"`
	ModelsCollection string `env:"SEED_MODELS_COLLECTION" envDefault:"labubu_models"`

	// HTTPTimeout bounds every single request. Zero disables the bound.
	HTTPTimeout time.Duration `env:"SEED_HTTP_TIMEOUT" envDefault:"30s"`

	// RequestsPerSecond paces outgoing calls. Zero means unpaced.
	RequestsPerSecond float64 `env:"SEED_REQUESTS_PER_SECOND" envDefault:"0"`

	// File locations.
	InputPath  string `env:"SEED_INPUT_PATH"  envDefault:"sample_data.json"`
	ReportPath string `env:"SEED_REPORT_PATH" envDefault:"labubu_verification_report.txt"`

	Debug bool `env:"DEBUG" envDefault:"false"`
}

// LoadClient parses environment variables into a [Client].
//
// Endpoint and credential may still be empty afterwards; callers either
// [Prompt] for them or call [Client.Validate] directly.
func LoadClient() (*Client, error) {
	cfg := &Client{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Validate reports [ErrIncomplete] when the endpoint or credential is empty.
func (c *Client) Validate() error {
	if c.Endpoint == "" || c.Credential == "" {
		return ErrIncomplete
	}
	return nil
}

// # Backend Configuration

// Backend holds all runtime configuration for the development REST backend.
type Backend struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"54321"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// DatabaseURL selects the PostgreSQL store. Empty keeps records in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL enables the collection listing cache. Empty disables it.
	RedisURL string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// JWTSecret signs and verifies HS256 bearer tokens.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// APIKeyHash is an optional bcrypt hash the apikey header must match.
	APIKeyHash string `env:"API_KEY_HASH"`

	// Collections served by this backend.
	SeriesCollection string `env:"SEED_SERIES_COLLECTION" envDefault:"labubu_series"`
	ModelsCollection string `env:"SEED_MODELS_COLLECTION" envDefault:"labubu_models"`
}

// LoadBackend parses environment variables into a [Backend] struct.
// It fails if any field marked 'required' is missing.
func LoadBackend() (*Backend, error) {
	cfg := &Backend{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the backend is running in development mode.
func (c *Backend) IsDevelopment() bool {
	return c.Environment == "development"
}

// Collections returns the collection names served by the backend.
func (c *Backend) Collections() []string {
	return []string{c.SeriesCollection, c.ModelsCollection}
}
