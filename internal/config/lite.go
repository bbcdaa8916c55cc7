// Package config provides configuration management for the summarizer
// server. This file contains the lightweight configuration for standalone
// operation, with no Postgres or Redis required.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StandaloneConfig is a simplified configuration for running the
// summarizer without any external infrastructure: the lookup cache lives
// in a local SQLite file and the annotation cache is LRU-only.
type StandaloneConfig struct {
	// Data storage
	DataDir string // Base directory for data files

	// Cache settings
	CacheMaxItems int           // Maximum items in memory annotation cache
	CacheTTL      time.Duration // Default annotation cache TTL

	// Annotation service
	AnnotationBaseURL string // Base URL of the external annotation service

	// Transport settings
	HTTPPort int // HTTP port the server listens on

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultStandaloneConfig returns a configuration with sensible defaults.
func DefaultStandaloneConfig() *StandaloneConfig {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".trapi-summarizer")

	return &StandaloneConfig{
		DataDir:           dataDir,
		CacheMaxItems:     1000,
		CacheTTL:          24 * time.Hour,
		AnnotationBaseURL: "http://localhost:9000",
		HTTPPort:          8080,
		LogLevel:          "info",
		LogFormat:         "json",
	}
}

// LoadStandaloneConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadStandaloneConfig() *StandaloneConfig {
	cfg := DefaultStandaloneConfig()

	if v := os.Getenv("TRAPI_SUMMARIZER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("TRAPI_SUMMARIZER_CACHE_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheMaxItems = n
		}
	}
	if v := os.Getenv("TRAPI_SUMMARIZER_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CacheTTL = d
		}
	}

	if v := os.Getenv("TRAPI_SUMMARIZER_ANNOTATION_BASE_URL"); v != "" {
		cfg.AnnotationBaseURL = v
	}

	if v := os.Getenv("TRAPI_SUMMARIZER_HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	if v := os.Getenv("TRAPI_SUMMARIZER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRAPI_SUMMARIZER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// LookupDBPath returns the path to the standalone lookup-cache SQLite
// database.
func (c *StandaloneConfig) LookupDBPath() string {
	return filepath.Join(c.DataDir, "lookup.db")
}

// ExportDir returns the directory for JSON exports.
func (c *StandaloneConfig) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *StandaloneConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir(), 0755)
}
