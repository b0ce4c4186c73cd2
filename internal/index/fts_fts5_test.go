//go:build sqlite_fts5

package index

import (
	"testing"
)

func TestFTS5_TableExists(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM hymns_fts`).Scan(&count); err != nil {
		t.Fatalf("hymns_fts table missing: %v", err)
	}
}

func TestFTS5_SearchWithSnippet(t *testing.T) {
	db := testDB(t)
	if err := db.UpsertHymn(row("fts", "Grande é o Senhor"), "Grande é o Senhor\ne mui digno de louvor", nil); err != nil {
		t.Fatalf("UpsertHymn: %v", err)
	}

	results, err := db.Search("louvor", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Code != "fts" {
		t.Errorf("code = %q", results[0].Code)
	}
	if results[0].Snippet == "" {
		t.Error("expected non-empty snippet")
	}
}

func TestFTS5_DiacriticsIgnored(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertHymn(row("acc", "Glória"), "glória a Deus", nil)

	results, _ := db.Search("gloria", 10)
	if len(results) != 1 {
		t.Errorf("results = %+v, want a match without accents", results)
	}
}

func TestFTS5_DeleteRemovesFromFTS(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertHymn(row("gone", "Gone"), "vanishing content", nil)
	_ = db.DeleteByPath("gone.json")

	results, _ := db.Search("vanishing", 10)
	if len(results) != 0 {
		t.Errorf("deleted hymn still in FTS index: %+v", results)
	}
}

func TestFTS5_UpsertReplacesContent(t *testing.T) {
	db := testDB(t)
	_ = db.UpsertHymn(row("evo", "Old"), "original text", nil)
	_ = db.UpsertHymn(row("evo", "New"), "replacement text", nil)

	results, _ := db.Search("original", 10)
	if len(results) != 0 {
		t.Error("old FTS content should be gone")
	}
	results, _ = db.Search("replacement", 10)
	if len(results) != 1 || results[0].Title != "New" {
		t.Errorf("FTS not updated: %+v", results)
	}
}
