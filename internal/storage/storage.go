// Package storage persists the serialized session as a single key-value
// entry in a local SQLite database. One database file is one storage scope;
// the session occupies exactly one key in it.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sessionKey is the single key the session is stored under.
const sessionKey = "eventease_session"

// ErrNoSession is returned by Load when no session entry exists. A first run
// and a run after logout are indistinguishable through this error.
var ErrNoSession = errors.New("no stored session")

// Store is a SQLite-backed durable entry for the session.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and ensures the
// kv table exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	_, err = sqlDB.Exec(
		`CREATE TABLE IF NOT EXISTS kv (
		   key        TEXT PRIMARY KEY,
		   value      BLOB NOT NULL,
		   updated_at INTEGER NOT NULL
		 )`,
	)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns the stored session bytes, or ErrNoSession when the entry is
// absent.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, sessionKey,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return value, nil
}

// Save writes the session bytes, replacing any previous entry.
func (s *Store) Save(ctx context.Context, data []byte) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		sessionKey, data, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete removes the session entry entirely. Deleting an absent entry is not
// an error.
func (s *Store) Delete(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM kv WHERE key = ?`, sessionKey,
	)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
