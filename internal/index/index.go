// Package index provides the SQLite-backed hymn catalogue with optional FTS5
// full-text search over titles and lyrics.
package index

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const coreSchemaSQL = `
CREATE TABLE IF NOT EXISTS hymns (
	path          TEXT PRIMARY KEY,
	code          TEXT NOT NULL UNIQUE,
	title         TEXT NOT NULL DEFAULT '',
	tone_original TEXT NOT NULL DEFAULT '',
	rhythm        TEXT NOT NULL DEFAULT '',
	level         INTEGER NOT NULL DEFAULT 0,
	checksum      TEXT NOT NULL DEFAULT '',
	lyrics        TEXT NOT NULL DEFAULT '',
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS hymn_chords (
	path  TEXT NOT NULL REFERENCES hymns(path) ON DELETE CASCADE,
	chord TEXT NOT NULL,
	UNIQUE(path, chord)
);

CREATE INDEX IF NOT EXISTS idx_hymns_rhythm ON hymns(rhythm);
CREATE INDEX IF NOT EXISTS idx_hymn_chords_chord ON hymn_chords(chord);
`

// DB wraps a sql.DB with catalogue operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("index: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: ping: %w", err)
	}
	if _, err := conn.Exec(coreSchemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply core schema: %w", err)
	}
	if err := initFTS(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("index: apply fts schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Ping checks that the database is reachable.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
