package domain

import "time"

// Config is the complete, viper-unmarshaled configuration for the
// summarizer service.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline"`
	Annotation AnnotationConfig `mapstructure:"annotation"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Store      StoreConfig      `mapstructure:"store"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// PipelineConfig configures the summarization core's only tunable
// parameters, per §6: max_hops, id_patterns, ara_to_infores_map. None of
// these are consulted by the core except MaxHops.
type PipelineConfig struct {
	MaxHops        int               `mapstructure:"max_hops"`
	IDPatterns     []string          `mapstructure:"id_patterns"`
	AraToInforesMap map[string]string `mapstructure:"ara_to_infores_map"`
}

// AnnotationConfig configures the external annotation collaborator.
type AnnotationConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RateLimitPerSec   float64       `mapstructure:"rate_limit_per_sec"`
	RateLimitBurst    int           `mapstructure:"rate_limit_burst"`
	BreakerMaxRequests uint32       `mapstructure:"breaker_max_requests"`
	BreakerInterval   time.Duration `mapstructure:"breaker_interval"`
	BreakerTimeout    time.Duration `mapstructure:"breaker_timeout"`
}

// CacheConfig configures the two-tier (LRU + Redis) annotation cache.
type CacheConfig struct {
	RedisURL    string        `mapstructure:"redis_url"`
	LRUSize     int           `mapstructure:"lru_size"`
	DefaultTTL  time.Duration `mapstructure:"default_ttl"`
	PoolSize    int           `mapstructure:"pool_size"`
	PoolTimeout time.Duration `mapstructure:"pool_timeout"`
}

// StoreConfig configures the durable lookup store; exactly one of Postgres
// or SQLite is active, mirroring a production/standalone deployment split.
type StoreConfig struct {
	Backend  string `mapstructure:"backend"` // "postgres" or "sqlite"
	Postgres struct {
		DSN          string `mapstructure:"dsn"`
		MaxOpenConns int    `mapstructure:"max_open_conns"`
		MaxIdleConns int    `mapstructure:"max_idle_conns"`
	} `mapstructure:"postgres"`
	SQLite struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"sqlite"`
}

// LoggingConfig configures logrus.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
