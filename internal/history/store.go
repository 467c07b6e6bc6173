// Package history persists committed text so recent phrases can be
// inspected and replayed. Backed by SQLite via the pure-Go driver.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS commits (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	text         TEXT NOT NULL,
	schema_id    TEXT NOT NULL DEFAULT '',
	committed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_commits_committed_at ON commits(committed_at DESC);
`

// Entry is one recorded commit.
type Entry struct {
	ID          int64
	Text        string
	SchemaID    string
	CommittedAt time.Time
}

// Store records committed text. Satisfies candidate.Recorder.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the commit-history database.
func Open(ctx context.Context, dbPath string, log zerolog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("history: database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{
		db:  db,
		log: log.With().Str("component", "history").Logger(),
	}, nil
}

// Record implements candidate.Recorder.
func (s *Store) Record(ctx context.Context, text, schemaID string) error {
	if text == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO commits (text, schema_id) VALUES (?, ?)`, text, schemaID)
	if err != nil {
		return fmt.Errorf("failed to record commit: %w", err)
	}
	return nil
}

// Recent returns the most recent commits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, text, schema_id, committed_at FROM commits ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query commits: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Text, &e.SchemaID, &e.CommittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan commit: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
