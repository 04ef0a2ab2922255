// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr        string
	DBPath            string // Empty selects the in-memory credential store.
	FetchTimeout      time.Duration
	FetchCacheEntries int // Bounds the fetched-page cache; 0 disables it.
	LogLevel          string
	LogFormat         string
	ProfilePath       string
}

// UsesPersistentStore returns true when a database path is configured. The
// composition root opens SQLite only in that case.
func (c *Config) UsesPersistentStore() bool {
	return c.DBPath != ""
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: FORMFILL_LISTEN_ADDR (127.0.0.1:8080),
// FORMFILL_DB_PATH (unset: in-memory store), FORMFILL_FETCH_TIMEOUT (5s),
// FORMFILL_FETCH_CACHE_ENTRIES (128, 0 disables the page cache),
// FORMFILL_LOG_LEVEL (info), FORMFILL_LOG_FORMAT (text|json, default text),
// FORMFILL_PROFILE_PATH (unset: built-in placeholder profile).
func Load() (*Config, error) {
	fetchTimeout := 5 * time.Second
	if v, ok := os.LookupEnv("FORMFILL_FETCH_TIMEOUT"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("FORMFILL_FETCH_TIMEOUT has invalid duration %q: %w", v, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("FORMFILL_FETCH_TIMEOUT must be positive, got %q", v)
		}
		fetchTimeout = parsed
	}

	fetchCacheEntries := 128
	if v, ok := os.LookupEnv("FORMFILL_FETCH_CACHE_ENTRIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("FORMFILL_FETCH_CACHE_ENTRIES has invalid integer %q: %w", v, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("FORMFILL_FETCH_CACHE_ENTRIES must not be negative, got %q", v)
		}
		fetchCacheEntries = n
	}

	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("FORMFILL_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	logLevel := "info"
	if v, ok := os.LookupEnv("FORMFILL_LOG_LEVEL"); ok && v != "" {
		logLevel = v
	}

	logFormat := "text"
	if v, ok := os.LookupEnv("FORMFILL_LOG_FORMAT"); ok && v != "" {
		logFormat = strings.ToLower(v)
		if logFormat != "text" && logFormat != "json" {
			return nil, fmt.Errorf("FORMFILL_LOG_FORMAT must be text or json, got %q", v)
		}
	}

	return &Config{
		ListenAddr:        listenAddr,
		DBPath:            os.Getenv("FORMFILL_DB_PATH"),
		FetchTimeout:      fetchTimeout,
		FetchCacheEntries: fetchCacheEntries,
		LogLevel:          logLevel,
		LogFormat:         logFormat,
		ProfilePath:       os.Getenv("FORMFILL_PROFILE_PATH"),
	}, nil
}
