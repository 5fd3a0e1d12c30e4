// Package store provides sqlite-based persistence for a deck. The document
// lives under three independent JSON-encoded keys in a kv table, mirroring
// the way the browser build of Radikal kept them in localStorage.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Persisted kv keys. The names are shared with the browser build so a deck
// exported from it round-trips.
const (
	KeySlides   = "radikal_slides"
	KeySections = "radikal_sections"
	KeyCamera   = "radikal_camera"
)

// Store represents the sqlite database store.
type Store struct {
	db *sql.DB
}

// New creates a new store connection.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// initialize creates the database schema.
func (s *Store) initialize() error {
	schema := `
	-- Document state (localStorage-style JSON blobs)
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT
	);

	-- Schema version tracking
	CREATE TABLE IF NOT EXISTS radikal_schema_version (
		version INTEGER PRIMARY KEY
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// GetValue retrieves a value from the kv table. Missing keys return "".
func (s *Store) GetValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetValue stores a value in the kv table.
func (s *Store) SetValue(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// DeleteValue removes a key from the kv table.
func (s *Store) DeleteValue(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// DB exposes the underlying connection for migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}
