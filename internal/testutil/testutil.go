// Package testutil provides shared test helpers for setting up hymn
// libraries and catalogue databases.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/starford/cifra/internal/index"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/storage"
)

// TestDB creates a temporary SQLite catalogue that is closed on cleanup.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	db, err := index.Open(filepath.Join(t.TempDir(), "cifra-test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestLibrary creates a temporary hymn library directory with its storage.
func TestLibrary(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// SampleHymn returns a small valid hymn in G with a verse, a chorus and a
// reference back to the chorus.
func SampleHymn(code string) models.Hymn {
	return models.ResolveRefs(models.Hymn{
		Code:     code,
		Title:    "Santo, Santo, Santo",
		Version:  "1",
		Level:    2,
		Rhythm:   "valsa",
		Tone:     models.Tone{Original: "G", Selected: "G"},
		Measures: models.Measures{SigN: 3, SigD: 4},
		Time:     models.Time{Duration: 180, IntroDuration: 12, Text: "3:00"},
		Score: models.Score{
			Introduction: []string{"G", "D|x2", "..."},
			Stanzas: []models.Stanza{
				{Code: "1", Type: models.StanzaVerse, Text: []string{
					"[G]Santo, santo, [D]santo",
					"[Em]Deus onipo[C]tente",
				}},
				{Code: "Coro", Type: models.StanzaChorus, Text: []string{
					"[C]Glória a [G]Deus, [D7|x2]amém",
				}},
				{Type: models.StanzaRef, Ref: "score.stanzas[1]"},
			},
		},
	})
}

// WriteHymn encodes h into the library under its code and returns the
// relative path.
func WriteHymn(t *testing.T, store storage.Provider, h models.Hymn) string {
	t.Helper()
	data, err := models.Encode(h)
	if err != nil {
		t.Fatal(err)
	}
	path := storage.HymnPath(h.Code)
	if err := store.Write(path, data); err != nil {
		t.Fatal(err)
	}
	return path
}
