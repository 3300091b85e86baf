package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// registers the sqlite3 driver with database/sql
	_ "github.com/mattn/go-sqlite3"
)

// BusyTimeout is how long a statement waits on a locked database file.
const BusyTimeout = 5 * time.Second

var ErrEmptyPath = errors.New("database path must not be empty")

// Open opens the pattern library at path and creates its schema. The pool
// is pinned to one connection: sqlite serializes writers anyway and a
// ":memory:" database lives only as long as its connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open pattern library: %w", ErrEmptyPath)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=%d", path, BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open pattern library: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping pattern library: %w", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables the service needs if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS patterns (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    rows_text TEXT NOT NULL,
    cols INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	return nil
}
