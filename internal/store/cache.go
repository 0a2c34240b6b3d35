// Package store persists enriched element records in SQLite so repeated
// lookups for the same off-catalog element skip the upstream call.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"elementvision/internal/catalog"
)

// Cache is a durable write-through cache keyed by normalized query. It
// implements resolve.RecordCache.
type Cache struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// Open initializes the SQLite database at the given path, creating the
// parent directory and schema as needed.
func Open(path string, logger *zap.Logger) (*Cache, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	c := &Cache{db: db, dbPath: path, logger: logger}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// initialize creates the required tables.
func (c *Cache) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS enriched_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL UNIQUE,
		symbol TEXT NOT NULL,
		atomic_number INTEGER NOT NULL,
		record_json TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_enriched_symbol ON enriched_records(symbol);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}
	return nil
}

// Get returns the cached record for a normalized query, reporting whether
// one exists. A row whose JSON no longer parses is purged and treated as a
// miss.
func (c *Cache) Get(ctx context.Context, query string) (catalog.Record, bool, error) {
	key := normalizeKey(query)

	var raw string
	err := c.db.QueryRowContext(ctx,
		"SELECT record_json FROM enriched_records WHERE query = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Record{}, false, nil
	}
	if err != nil {
		return catalog.Record{}, false, fmt.Errorf("failed to read cache: %w", err)
	}

	var rec catalog.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		c.logger.Warn("purging unreadable cache row",
			zap.String("query", query), zap.Error(err))
		if _, derr := c.db.ExecContext(ctx,
			"DELETE FROM enriched_records WHERE query = ?", key); derr != nil {
			c.logger.Warn("failed to purge cache row", zap.Error(derr))
		}
		return catalog.Record{}, false, nil
	}
	return rec, true, nil
}

// Put upserts a record under its normalized query key.
func (c *Cache) Put(ctx context.Context, query string, rec catalog.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO enriched_records (query, symbol, atomic_number, record_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			symbol = excluded.symbol,
			atomic_number = excluded.atomic_number,
			record_json = excluded.record_json,
			updated_at = excluded.updated_at`,
		normalizeKey(query), rec.Symbol, rec.AtomicNumber, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Len reports the number of cached records.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM enriched_records").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache rows: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

func normalizeKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
