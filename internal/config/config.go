// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Assembled from the
	// POSTGRES_* variables, or taken verbatim from DATABASE_URL when set.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a Config.
//
// The database connection is described by POSTGRES_HOST, POSTGRES_PORT,
// POSTGRES_DB, POSTGRES_USER, and POSTGRES_PASSWORD. Every variable has a
// local-development default, so a bare environment still produces a usable
// config. DATABASE_URL, when set, overrides the assembled connection string.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
		return cfg, nil
	}

	dbPort := getEnv("POSTGRES_PORT", "5432")
	if _, err := strconv.Atoi(dbPort); err != nil {
		return Config{}, fmt.Errorf("POSTGRES_PORT must be numeric, got %q", dbPort)
	}

	u := url.URL{
		Scheme: "postgres",
		User: url.UserPassword(
			getEnv("POSTGRES_USER", "postgres"),
			getEnv("POSTGRES_PASSWORD", "postgres"),
		),
		Host: getEnv("POSTGRES_HOST", "localhost") + ":" + dbPort,
		Path: "/" + getEnv("POSTGRES_DB", "coordinates_db"),
	}
	cfg.DatabaseURL = u.String()

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
