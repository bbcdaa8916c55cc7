package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PostgresConfig is the connection-pool portion of domain.StoreConfig's
// Postgres branch.
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

// PostgresStore implements domain.LookupStore on top of a pgxpool.Pool.
type PostgresStore struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

// NewPostgresStore opens a connection pool against cfg.DSN and verifies it
// with a ping before returning.
func NewPostgresStore(ctx context.Context, cfg PostgresConfig, logger *logrus.Logger) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing lookup store dsn: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating lookup store pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging lookup store: %w", err)
	}

	logger.Info("lookup store connection pool established")

	return &PostgresStore{pool: pool, log: logger}, nil
}

// Get implements domain.LookupStore.
func (s *PostgresStore) Get(ctx context.Context, kind, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM lookup_cache WHERE kind = $1 AND key = $2`,
		kind, key,
	).Scan(&value)
	if err == pgx.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting lookup entry: %w", err)
	}
	return value, true, nil
}

// Put implements domain.LookupStore, upserting on (kind, key).
func (s *PostgresStore) Put(ctx context.Context, kind, key, value string) error {
	now := time.Now()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO lookup_cache (kind, key, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (kind, key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, kind, key, value, now)
	if err != nil {
		return fmt.Errorf("putting lookup entry: %w", err)
	}
	return nil
}

// Count implements domain.LookupStore.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lookup_cache`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting lookup entries: %w", err)
	}
	return count, nil
}

// Delete implements domain.LookupStore.
func (s *PostgresStore) Delete(ctx context.Context, kind, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM lookup_cache WHERE kind = $1 AND key = $2`, kind, key)
	if err != nil {
		return fmt.Errorf("deleting lookup entry: %w", err)
	}
	return nil
}

// Close implements domain.LookupStore.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	s.log.Info("lookup store connection pool closed")
	return nil
}
