package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements domain.LookupStore using an embedded SQLite file,
// the standalone/single-node deployment path.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if absent) the lookup-cache database at
// dbPath and ensures its schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating lookup store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening lookup store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating lookup store schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS lookup_cache (
			kind TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (kind, key)
		);
		CREATE INDEX IF NOT EXISTS idx_lookup_cache_kind ON lookup_cache(kind);
	`)
	return err
}

// Get implements domain.LookupStore.
func (s *SQLiteStore) Get(ctx context.Context, kind, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM lookup_cache WHERE kind = ? AND key = ?", kind, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting lookup entry: %w", err)
	}
	return value, true, nil
}

// Put implements domain.LookupStore, upserting on (kind, key).
func (s *SQLiteStore) Put(ctx context.Context, kind, key, value string) error {
	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO lookup_cache (kind, key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, kind, key, value, now, now)
	if err != nil {
		return fmt.Errorf("putting lookup entry: %w", err)
	}
	return nil
}

// Count implements domain.LookupStore.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lookup_cache").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting lookup entries: %w", err)
	}
	return count, nil
}

// Delete implements domain.LookupStore.
func (s *SQLiteStore) Delete(ctx context.Context, kind, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM lookup_cache WHERE kind = ? AND key = ?", kind, key)
	if err != nil {
		return fmt.Errorf("deleting lookup entry: %w", err)
	}
	return nil
}

// Close implements domain.LookupStore.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
