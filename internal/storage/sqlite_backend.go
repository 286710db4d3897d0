package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver (no CGO required)
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
    key         TEXT PRIMARY KEY,
    value       BLOB NOT NULL,
    updated_at  DATETIME NOT NULL
);`

// SQLiteBackend stores every key as one row of the kv table.
type SQLiteBackend struct {
	db *sqlx.DB
}

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	// one writer keeps the database/sql pool from racing on the file lock
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}
	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Get(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *SQLiteBackend) Put(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	return err
}

func (s *SQLiteBackend) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (s *SQLiteBackend) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	return err
}

func (s *SQLiteBackend) Keys() ([]string, error) {
	keys := make([]string, 0)
	if err := s.db.Select(&keys, `SELECT key FROM kv ORDER BY key`); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
