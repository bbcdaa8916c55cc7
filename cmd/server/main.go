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

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("starting TRAPI summarizer server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lookupStore, err := newLookupStore(ctx, cfg.Store, logger)
	if err != nil {
		log.Fatalf("failed to open lookup store: %v", err)
	}
	defer lookupStore.Close()

	annotationCache, err := external.NewAnnotationCache(cfg.Cache)
	if err != nil {
		log.Fatalf("failed to build annotation cache: %v", err)
	}
	defer annotationCache.Close()

	annotationClient := external.NewHTTPAnnotationClient(cfg.Annotation, annotationCache)

	idPatterns := cfg.Pipeline.IDPatterns
	if len(idPatterns) == 0 {
		idPatterns = external.DefaultIDPatterns
	}
	publicationResolver := external.NewDurablePublicationResolver(
		external.NewPatternPublicationResolver(idPatterns),
		lookupStore,
		logger,
	)

	summarizer := service.New(cfg.Pipeline.MaxHops, publicationResolver, logger)

	server := api.NewServer(configManager, summarizer, annotationClient, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("server failed to start")
	}

	logger.Info("server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func newLookupStore(ctx context.Context, cfg domain.StoreConfig, logger *logrus.Logger) (domain.LookupStore, error) {
	switch cfg.Backend {
	case "postgres":
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return store.NewPostgresStore(connectCtx, store.PostgresConfig{
			DSN:          cfg.Postgres.DSN,
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		}, logger)
	default:
		return store.NewSQLiteStore(cfg.SQLite.Path)
	}
}
