// Command standalone-server runs the TRAPI summarizer with no external
// infrastructure: the lookup cache lives in a local SQLite file and the
// annotation cache is LRU-only, so nothing but the annotation service
// itself needs to be reachable.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ncats-translator/trapi-summarizer/internal/api"
	"github.com/ncats-translator/trapi-summarizer/internal/config"
	"github.com/ncats-translator/trapi-summarizer/internal/domain"
	"github.com/ncats-translator/trapi-summarizer/internal/service"
	"github.com/ncats-translator/trapi-summarizer/internal/store"
	"github.com/ncats-translator/trapi-summarizer/pkg/external"
)

// standaloneConfigManager adapts a config.StandaloneConfig into the
// domain.ConfigManager interface api.Server expects, without pulling in
// Viper or any of the full Manager's file/env layering.
type standaloneConfigManager struct {
	cfg *domain.Config
}

func newStandaloneConfigManager(c *config.StandaloneConfig) *standaloneConfigManager {
	return &standaloneConfigManager{cfg: &domain.Config{
		Server: domain.ServerConfig{
			Host:         "0.0.0.0",
			Port:         c.HTTPPort,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Pipeline: domain.PipelineConfig{
			MaxHops:    3,
			IDPatterns: external.DefaultIDPatterns,
		},
		Annotation: domain.AnnotationConfig{
			BaseURL:            c.AnnotationBaseURL,
			Timeout:            10 * time.Second,
			RateLimitPerSec:    20,
			RateLimitBurst:     10,
			BreakerMaxRequests: 5,
			BreakerInterval:    30 * time.Second,
			BreakerTimeout:     60 * time.Second,
		},
		Cache: domain.CacheConfig{
			LRUSize:    c.CacheMaxItems,
			DefaultTTL: c.CacheTTL,
		},
		Logging: domain.LoggingConfig{Level: c.LogLevel, Format: c.LogFormat},
	}}
}

func (m *standaloneConfigManager) GetConfig() *domain.Config             { return m.cfg }
func (m *standaloneConfigManager) GetServerConfig() *domain.ServerConfig { return &m.cfg.Server }
func (m *standaloneConfigManager) Reload() error                        { return nil }
func (m *standaloneConfigManager) Validate() error                      { return nil }
func (m *standaloneConfigManager) IsProduction() bool                   { return false }
func (m *standaloneConfigManager) IsDevelopment() bool                  { return true }

var _ domain.ConfigManager = (*standaloneConfigManager)(nil)

func main() {
	cfg := config.LoadStandaloneConfig()
	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	logger := logrus.New()
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	logger.WithFields(logrus.Fields{
		"data_dir": cfg.DataDir,
		"port":     cfg.HTTPPort,
	}).Info("starting standalone TRAPI summarizer server")

	lookupStore, err := store.NewSQLiteStore(cfg.LookupDBPath())
	if err != nil {
		log.Fatalf("failed to open lookup store: %v", err)
	}
	defer lookupStore.Close()

	annotationCache, err := external.NewAnnotationCache(domain.CacheConfig{
		LRUSize:    cfg.CacheMaxItems,
		DefaultTTL: cfg.CacheTTL,
	})
	if err != nil {
		log.Fatalf("failed to build annotation cache: %v", err)
	}
	defer annotationCache.Close()

	configManager := newStandaloneConfigManager(cfg)
	domainCfg := configManager.GetConfig()

	annotationClient := external.NewHTTPAnnotationClient(domainCfg.Annotation, annotationCache)
	publicationResolver := external.NewDurablePublicationResolver(
		external.NewPatternPublicationResolver(domainCfg.Pipeline.IDPatterns),
		lookupStore,
		logger,
	)

	summarizer := service.New(domainCfg.Pipeline.MaxHops, publicationResolver, logger)
	server := api.NewServer(configManager, summarizer, annotationClient, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("standalone server failed to start")
	}

	logger.Info("standalone server stopped")
}
