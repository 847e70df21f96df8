// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// Upstream category index: "meilisearch", "appsearch" or "postgres"
	// (the local catalog, default for development).
	SearchBackend string

	MeiliHost   string
	MeiliAPIKey string
	MeiliIndex  string

	AppSearchHost   string
	AppSearchAPIKey string
	AppSearchEngine string

	// BrandCacheTTL controls the in-memory brand directory cache.
	BrandCacheTTL time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "bijoucatalog"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "bijoucatalog"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		SearchBackend: envOrDefault("SEARCH_BACKEND", "postgres"),

		MeiliHost:   os.Getenv("MEILISEARCH_HOST"),
		MeiliAPIKey: os.Getenv("MEILISEARCH_API_KEY"),
		MeiliIndex:  envOrDefault("MEILISEARCH_INDEX", "categories"),

		AppSearchHost:   os.Getenv("APPSEARCH_HOST"),
		AppSearchAPIKey: os.Getenv("APPSEARCH_API_KEY"),
		AppSearchEngine: envOrDefault("APPSEARCH_ENGINE", "categories"),
	}

	ttl, err := time.ParseDuration(envOrDefault("BRAND_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid BRAND_CACHE_TTL: %w", err)
	}
	cfg.BrandCacheTTL = ttl

	switch cfg.SearchBackend {
	case "meilisearch", "appsearch", "postgres":
	default:
		return nil, fmt.Errorf("unknown SEARCH_BACKEND %q", cfg.SearchBackend)
	}

	if cfg.Env == "production" {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
