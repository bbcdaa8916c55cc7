package store

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgresStoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}()

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to build connection string: %v", err)
	}

	cfg := PostgresConfig{DSN: dsn, MaxOpenConns: 5, MaxIdleConns: 1}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	s, err := NewPostgresStore(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("failed to open lookup store: %v", err)
	}
	defer s.Close()

	if _, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS lookup_cache (
			kind TEXT NOT NULL, key TEXT NOT NULL, value TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (kind, key)
		)`); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	if err := s.Put(ctx, "annotation", "CHEBI:1", `{"name":"aspirin"}`); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	value, ok, err := s.Get(ctx, "annotation", "CHEBI:1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if value != `{"name":"aspirin"}` {
		t.Errorf("unexpected value %q", value)
	}

	if err := s.Put(ctx, "annotation", "CHEBI:1", `{"name":"acetylsalicylic acid"}`); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	value, _, _ = s.Get(ctx, "annotation", "CHEBI:1")
	if value != `{"name":"acetylsalicylic acid"}` {
		t.Errorf("expected updated value, got %q", value)
	}

	count, err := s.Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("expected count 1, got %d err=%v", count, err)
	}

	if err := s.Delete(ctx, "annotation", "CHEBI:1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "annotation", "CHEBI:1"); ok {
		t.Error("expected miss after delete")
	}
}
