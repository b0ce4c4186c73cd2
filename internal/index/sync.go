package index

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/cifra/internal/checksum"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/parser"
	"github.com/starford/cifra/internal/storage"
)

// Sync walks the hymn library and brings the catalogue up to date:
//   - new/changed files are decoded and upserted
//   - files removed from disk are deleted from the catalogue
func Sync(db HymnIndex, store storage.Provider, logger *slog.Logger) error {
	metas, err := store.List("")
	if err != nil {
		return err
	}

	checksums, err := db.AllChecksums()
	if err != nil {
		return err
	}

	disk := make(map[string]struct{}, len(metas))
	for _, m := range metas {
		disk[m.Path] = struct{}{}

		if checksums[m.Path] == m.Checksum {
			continue
		}

		data, err := store.Read(m.Path)
		if err != nil {
			logger.Warn("sync: read failed", slog.String("path", m.Path), slog.String("error", err.Error()))
			continue
		}
		if _, err := IndexFile(db, m.Path, data, logger); err != nil {
			logger.Warn("sync: index failed", slog.String("path", m.Path), slog.String("error", err.Error()))
		} else {
			logger.Debug("sync: indexed", slog.String("path", m.Path))
		}
	}

	for p := range checksums {
		if _, ok := disk[p]; !ok {
			if err := db.DeleteByPath(p); err != nil {
				logger.Warn("sync: delete failed", slog.String("path", p), slog.String("error", err.Error()))
			} else {
				logger.Debug("sync: removed stale", slog.String("path", p))
			}
		}
	}

	return nil
}

// IndexFile decodes a hymn file and upserts it into the catalogue. A hymn
// without a code takes the code encoded in its file name. Dangling stanza
// references are indexed as empty stanzas and logged.
func IndexFile(db HymnIndex, path string, data []byte, logger *slog.Logger) (models.Hymn, error) {
	h, err := models.Decode(data)
	if err != nil {
		return models.Hymn{}, fmt.Errorf("index: %s: %w", path, err)
	}
	if h.Code == "" {
		h.Code = storage.CodeFromPath(path)
	}
	if dangling := models.DanglingRefs(h); len(dangling) > 0 && logger != nil {
		logger.Warn("index: dangling stanza references",
			slog.String("path", path),
			slog.Any("stanzas", dangling))
	}

	row := HymnRow{
		Path:     path,
		Code:     h.Code,
		Title:    h.Title,
		Tone:     h.Tone.Original,
		Rhythm:   h.Rhythm,
		Level:    h.Level,
		Checksum: checksum.Sum(data),
	}
	chords := parser.CollectChords(h.Score.Introduction, h.Lines())
	return h, db.UpsertHymn(row, Lyrics(h), chords)
}

// Lyrics returns the plain lyric text of a hymn for full-text search, one
// line per lyric line. Ref stanzas are skipped since their text repeats
// another stanza.
func Lyrics(h models.Hymn) string {
	var b strings.Builder
	for _, s := range h.Score.Stanzas {
		if s.IsRef() {
			continue
		}
		for _, line := range s.Text {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(strings.TrimSpace(parser.StripMarkers(line)))
		}
	}
	return b.String()
}
