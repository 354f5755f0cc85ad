// Package cache persists API responses in a local SQLite database.
//
// The store maps a request URL to the response captured for it. Entries
// are kept forever: the Zvuk catalog addressed by this tool is
// immutable for our purposes, so a response fetched once never needs to
// be fetched again. Repeat runs over the same links resolve entirely
// from the store.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
    url        TEXT PRIMARY KEY,
    status     INTEGER NOT NULL,
    header     TEXT NOT NULL,
    body       BLOB,
    created_at TEXT NOT NULL
)`

// Entry is one cached response.
type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

// Store manages response persistence backed by SQLite.
//
// All methods are safe for concurrent use; writers are serialized by
// SQLite itself (WAL journal, busy timeout).
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the response database at path,
// creating parent directories as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create responses table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached response for url, or nil when none is stored.
func (s *Store) Get(ctx context.Context, url string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT status, header, body FROM responses WHERE url = ?`, url)

	var (
		status    int
		headerRaw string
		body      []byte
	)
	if err := row.Scan(&status, &headerRaw, &body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached response: %w", err)
	}

	header := http.Header{}
	if headerRaw != "" {
		if err := json.Unmarshal([]byte(headerRaw), &header); err != nil {
			return nil, fmt.Errorf("decode cached header: %w", err)
		}
	}

	return &Entry{Status: status, Header: header, Body: body}, nil
}

// Put stores the response for url, replacing any previous entry.
func (s *Store) Put(ctx context.Context, url string, entry *Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}

	headerRaw, err := json.Marshal(entry.Header)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO responses (url, status, header, body, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(url) DO UPDATE
         SET status = excluded.status, header = excluded.header,
             body = excluded.body, created_at = excluded.created_at`,
		url,
		entry.Status,
		string(headerRaw),
		entry.Body,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put cached response: %w", err)
	}
	return nil
}

// Len returns the number of stored responses.
func (s *Store) Len(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count cached responses: %w", err)
	}
	return count, nil
}
