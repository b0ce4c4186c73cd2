package index

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/starford/cifra/internal/apperr"
	"github.com/starford/cifra/internal/chord"
)

// HymnRow represents a row in the hymns table.
type HymnRow struct {
	Path      string    `json:"path"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	Tone      string    `json:"tone"`
	Rhythm    string    `json:"rhythm,omitempty"`
	Level     int       `json:"level,omitempty"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
	// Chords is only filled by GetHymn.
	Chords []string `json:"chords,omitempty"`
}

// SearchResult represents one search hit.
type SearchResult struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ChordCount is the number of hymns using a chord.
type ChordCount struct {
	Chord string `json:"chord"`
	Hymns int    `json:"hymns"`
}

const hymnColumns = `path, code, title, tone_original, rhythm, level, checksum, updated_at`

// sortOrders maps the accepted ListHymns sort keys to ORDER BY clauses.
var sortOrders = map[string]string{
	"":        "title COLLATE NOCASE, code",
	"title":   "title COLLATE NOCASE, code",
	"code":    "code",
	"updated": "updated_at DESC, code",
}

// UpsertHymn inserts or replaces a hymn, its FTS entry and its chord set
// within a transaction. Chord names are stored cleaned and normalised.
func (db *DB) UpsertHymn(h HymnRow, lyrics string, chords []string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if h.UpdatedAt.IsZero() {
		h.UpdatedAt = time.Now().UTC()
	}
	_, err = tx.Exec(`
		INSERT INTO hymns (path, code, title, tone_original, rhythm, level, checksum, lyrics, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			code          = excluded.code,
			title         = excluded.title,
			tone_original = excluded.tone_original,
			rhythm        = excluded.rhythm,
			level         = excluded.level,
			checksum      = excluded.checksum,
			lyrics        = excluded.lyrics,
			updated_at    = excluded.updated_at
	`, h.Path, h.Code, h.Title, h.Tone, h.Rhythm, h.Level, h.Checksum, lyrics, h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("index: upsert hymn %s: %w", h.Path, err)
	}

	if err := ftsUpsert(tx, h.Path, h.Title, lyrics); err != nil {
		return err
	}

	_, _ = tx.Exec(`DELETE FROM hymn_chords WHERE path = ?`, h.Path)
	if len(chords) > 0 {
		stmt, err := tx.Prepare(`INSERT OR IGNORE INTO hymn_chords (path, chord) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("index: prepare chord insert: %w", err)
		}
		defer stmt.Close()
		for _, c := range chords {
			if _, err := stmt.Exec(h.Path, chord.Normalize(chord.CleanName(c))); err != nil {
				return fmt.Errorf("index: insert chord: %w", err)
			}
		}
	}

	return tx.Commit()
}

// DeleteByPath removes a hymn, its FTS entry and its chord set.
func (db *DB) DeleteByPath(path string) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	ftsDelete(tx, path)
	_, _ = tx.Exec(`DELETE FROM hymn_chords WHERE path = ?`, path)
	if _, err := tx.Exec(`DELETE FROM hymns WHERE path = ?`, path); err != nil {
		return fmt.Errorf("index: delete hymn %s: %w", path, err)
	}

	return tx.Commit()
}

// GetChecksum returns the stored checksum for a hymn file, or empty string
// if it is not indexed.
func (db *DB) GetChecksum(path string) (string, error) {
	var cs string
	err := db.conn.QueryRow(`SELECT checksum FROM hymns WHERE path = ?`, path).Scan(&cs)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("index: get checksum: %w", err)
	}
	return cs, nil
}

// GetHymn returns the catalogue row of a hymn, including its chord set.
func (db *DB) GetHymn(code string) (*HymnRow, error) {
	row := db.conn.QueryRow(`SELECT `+hymnColumns+` FROM hymns WHERE code = ?`, code)
	h, err := scanHymn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("index: get hymn: %w", err)
	}

	rows, err := db.conn.Query(`SELECT chord FROM hymn_chords WHERE path = ? ORDER BY rowid`, h.Path)
	if err != nil {
		return nil, fmt.Errorf("index: get hymn chords: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		h.Chords = append(h.Chords, c)
	}
	return &h, rows.Err()
}

// ListHymns returns one page of the catalogue plus the total number of rows
// matching the optional rhythm filter. sort is "title" (default), "code" or
// "updated".
func (db *DB) ListHymns(limit, offset int, rhythm, sort string) ([]HymnRow, int, error) {
	order, ok := sortOrders[sort]
	if !ok {
		return nil, 0, fmt.Errorf("index: unknown sort %q", sort)
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	where, args := "", []any{}
	if rhythm != "" {
		where = ` WHERE rhythm = ?`
		args = append(args, rhythm)
	}

	var total int
	if err := db.conn.QueryRow(`SELECT count(*) FROM hymns`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("index: count hymns: %w", err)
	}

	rows, err := db.conn.Query(`SELECT `+hymnColumns+` FROM hymns`+where+
		` ORDER BY `+order+` LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("index: list hymns: %w", err)
	}
	defer rows.Close()

	out, err := collectHymns(rows)
	return out, total, err
}

// HymnsWithChord returns the hymns using the given chord. Any spelling is
// accepted: the name is cleaned and normalised before matching.
func (db *DB) HymnsWithChord(name string) ([]HymnRow, error) {
	name = chord.Normalize(chord.CleanName(name))
	rows, err := db.conn.Query(`
		SELECT h.path, h.code, h.title, h.tone_original, h.rhythm, h.level, h.checksum, h.updated_at
		FROM hymns h
		JOIN hymn_chords c ON c.path = h.path
		WHERE c.chord = ?
		ORDER BY h.title COLLATE NOCASE, h.code
	`, name)
	if err != nil {
		return nil, fmt.Errorf("index: hymns with chord: %w", err)
	}
	defer rows.Close()
	return collectHymns(rows)
}

// ChordUsage counts, for every indexed chord, how many hymns use it. Most
// used chords come first.
func (db *DB) ChordUsage() ([]ChordCount, error) {
	rows, err := db.conn.Query(`
		SELECT chord, count(*) AS n
		FROM hymn_chords
		GROUP BY chord
		ORDER BY n DESC, chord
	`)
	if err != nil {
		return nil, fmt.Errorf("index: chord usage: %w", err)
	}
	defer rows.Close()

	var out []ChordCount
	for rows.Next() {
		var c ChordCount
		if err := rows.Scan(&c.Chord, &c.Hymns); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AllChecksums returns path → checksum for every indexed hymn.
func (db *DB) AllChecksums() (map[string]string, error) {
	rows, err := db.conn.Query(`SELECT path, checksum FROM hymns`)
	if err != nil {
		return nil, fmt.Errorf("index: all checksums: %w", err)
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var p, cs string
		if err := rows.Scan(&p, &cs); err != nil {
			return nil, err
		}
		out[p] = cs
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHymn(s scanner) (HymnRow, error) {
	var h HymnRow
	err := s.Scan(&h.Path, &h.Code, &h.Title, &h.Tone, &h.Rhythm, &h.Level, &h.Checksum, &h.UpdatedAt)
	return h, err
}

func collectHymns(rows *sql.Rows) ([]HymnRow, error) {
	var out []HymnRow
	for rows.Next() {
		h, err := scanHymn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
