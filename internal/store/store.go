// Package store is the local database: whole JSON collections persisted
// under fixed string keys in a single-file SQLite kv table, mirroring
// the localStorage layout the site originally ran on. Last write wins,
// there is no merge, and a corrupt value degrades to the zero value on
// read rather than failing the caller.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Fixed collection keys. The names are kept byte-for-byte from the
// original localStorage schema so an exported dump stays portable.
const (
	KeyArticles    = "msadmin_db_articles_v2"
	KeyCaseStudies = "msadmin_db_casestudies_v2"
	KeyAnalytics   = "msadmin_db_analytics"
	KeyLogs        = "msadmin_db_logs"
	KeyTrash       = "msadmin_db_trash"
	KeyLockout     = "msadmin_auth_lockout"
)

// QuotaBytes is the displayed storage budget (the 5MB localStorage
// convention). It is informational only; nothing evicts against it.
const QuotaBytes int64 = 5 * 1024 * 1024

// Store wraps the kv table with typed get/save helpers.
type Store struct {
	db     *sql.DB
	logger *zap.Logger

	// mu serializes compound read-modify-write cycles across keys.
	// Callers hold it via Lock/Unlock; Get and Save themselves are
	// safe under database/sql.
	mu sync.Mutex
}

// Open opens (or creates) the store file at path and ensures the schema.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Lock takes the store-wide write lock for a read-modify-write cycle.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store-wide write lock.
func (s *Store) Unlock() { s.mu.Unlock() }

// Get deserializes the value stored under key into v. A missing or
// malformed value leaves v at its zero value; callers rely on this to
// keep the site browsable over a tampered store.
func (s *Store) Get(key string, v any) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		s.logger.Warn("store read failed, degrading to empty",
			zap.String("key", key), zap.Error(err))
		return
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		s.logger.Warn("store value malformed, degrading to empty",
			zap.String("key", key), zap.Error(err))
	}
}

// Save serializes v and writes it under key. Write failures propagate:
// they mean data loss and must surface to the user.
func (s *Store) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Has reports whether key is present, regardless of value validity.
func (s *Store) Has(key string) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM kv WHERE key = ?", key).Scan(&one)
	return err == nil
}

// Delete removes key. Missing keys are a no-op.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// UsedBytes approximates the on-disk footprint of all collections for
// the dashboard quota gauge.
func (s *Store) UsedBytes() (int64, error) {
	var used sql.NullInt64
	err := s.db.QueryRow("SELECT SUM(LENGTH(key) + LENGTH(value)) FROM kv").Scan(&used)
	if err != nil {
		return 0, fmt.Errorf("measure store: %w", err)
	}
	return used.Int64, nil
}
