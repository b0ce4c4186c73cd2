//go:build !sqlite_fts5

package index

import (
	"database/sql"
	"fmt"
	"strings"
)

func initFTS(_ *sql.DB) error {
	// FTS5 not available; search uses LIKE on hymns.title and hymns.lyrics.
	return nil
}

func ftsUpsert(_ *sql.Tx, _, _, _ string) error {
	// Lyrics are already stored in the hymns table.
	return nil
}

func ftsDelete(_ *sql.Tx, _ string) {}

// Search performs a LIKE-based search (fallback when FTS5 is not compiled in).
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	like := "%" + query + "%"
	rows, err := db.conn.Query(`
		SELECT code, path, title, lyrics
		FROM hymns
		WHERE title LIKE ? OR lyrics LIKE ? OR code = ?
		ORDER BY title COLLATE NOCASE
		LIMIT ?
	`, like, like, query, limit)
	if err != nil {
		return nil, fmt.Errorf("index: search: %w", err)
	}
	defer rows.Close()

	var out []SearchResult
	for rows.Next() {
		var r SearchResult
		var lyrics string
		if err := rows.Scan(&r.Code, &r.Path, &r.Title, &lyrics); err != nil {
			return nil, err
		}
		r.Snippet = snippet(lyrics, query, 64)
		out = append(out, r)
	}
	return out, rows.Err()
}

// snippet cuts up to width runes of lyrics around the first
// case-insensitive match of query.
func snippet(lyrics, query string, width int) string {
	runes := []rune(lyrics)
	start := 0
	if i := strings.Index(strings.ToLower(lyrics), strings.ToLower(query)); i > 0 && i <= len(lyrics) && query != "" {
		start = max(0, len([]rune(lyrics[:i]))-width/4)
	}
	end := min(len(runes), start+width)
	out := strings.ReplaceAll(string(runes[start:end]), "\n", " / ")
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out += "..."
	}
	return out
}
