package config

import (
	"fmt"
	"strings"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
	"github.com/spf13/viper"
)

// Manager loads and validates domain.Config using Viper, layering a config
// file over built-in defaults over environment variables.
type Manager struct {
	config *domain.Config
}

// NewManager builds a Manager and loads configuration immediately.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return m, nil
}

func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/trapi-summarizer/")

	viper.SetEnvPrefix("TRAPI_SUMMARIZER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("pipeline.max_hops", 3)
	viper.SetDefault("pipeline.id_patterns", defaultIDPatterns())
	viper.SetDefault("pipeline.ara_to_infores_map", map[string]string{})

	viper.SetDefault("annotation.base_url", "http://localhost:9000")
	viper.SetDefault("annotation.timeout", "10s")
	viper.SetDefault("annotation.rate_limit_per_sec", 20)
	viper.SetDefault("annotation.rate_limit_burst", 10)
	viper.SetDefault("annotation.breaker_max_requests", 5)
	viper.SetDefault("annotation.breaker_interval", "30s")
	viper.SetDefault("annotation.breaker_timeout", "60s")

	viper.SetDefault("cache.redis_url", "")
	viper.SetDefault("cache.lru_size", 4096)
	viper.SetDefault("cache.default_ttl", "24h")
	viper.SetDefault("cache.pool_size", 10)
	viper.SetDefault("cache.pool_timeout", "4s")

	viper.SetDefault("store.backend", "sqlite")
	viper.SetDefault("store.sqlite.path", "./data/lookup.db")
	viper.SetDefault("store.postgres.max_open_conns", 25)
	viper.SetDefault("store.postgres.max_idle_conns", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

// defaultIDPatterns mirrors pkg/external.DefaultIDPatterns in literal form:
// this package does not import pkg/external, so the default list is
// duplicated rather than referenced and the two lists are kept identical.
// Entries use "|" to separate the TYPE/REGEX/URL_TEMPLATE fields, since both
// the regex and the template need to contain literal colons.
func defaultIDPatterns() []string {
	return []string{
		`PMID|^PMID:(?P<id>\d+)$|https://pubmed.ncbi.nlm.nih.gov/$id`,
		`PMC|^PMC:?(?P<id>PMC\d+)$|https://www.ncbi.nlm.nih.gov/pmc/articles/$id`,
		`DOI|^(?:DOI:)?(?P<id>10\.\S+)$|https://doi.org/$id`,
	}
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns just the HTTP server settings.
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// Reload re-reads configuration from all sources.
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate checks the loaded configuration for obviously broken values.
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Pipeline.MaxHops < 1 {
		return fmt.Errorf("pipeline.max_hops must be >= 1, got %d", config.Pipeline.MaxHops)
	}

	switch config.Store.Backend {
	case "postgres":
		if config.Store.Postgres.DSN == "" {
			return fmt.Errorf("store.postgres.dsn is required when backend is postgres")
		}
	case "sqlite":
		if config.Store.SQLite.Path == "" {
			return fmt.Errorf("store.sqlite.path is required when backend is sqlite")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", config.Store.Backend)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction reports whether the "environment" setting selects production.
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}

// IsDevelopment reports whether the "environment" setting selects
// development, which is also the default when unset.
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(viper.GetString("environment"))
	return env == "development" || env == "dev" || env == ""
}
