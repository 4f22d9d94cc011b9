package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores keys in a single-table key/value schema. It is
// selected when the config path ends in .db and gives the same
// one-document-under-one-key semantics as the file backend.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

func (b *SQLiteBackend) open() (*sql.DB, error) {
	if b.db != nil {
		return b.db, nil
	}
	if err := os.MkdirAll(filepath.Dir(b.path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	b.db = db
	return db, nil
}

func (b *SQLiteBackend) Get(key string) (string, bool, error) {
	db, err := b.open()
	if err != nil {
		return "", false, err
	}
	var value string
	err = db.QueryRow("SELECT value FROM documents WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read document: %w", err)
	}
	return value, true, nil
}

func (b *SQLiteBackend) Set(key, value string) error {
	db, err := b.open()
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
