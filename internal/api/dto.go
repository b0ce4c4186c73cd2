package api

import (
	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/hymnservice"
	"github.com/starford/cifra/internal/index"
	"github.com/starford/cifra/internal/storage"
)

// HymnDetail is the full hymn response type (aliased from the domain layer).
type HymnDetail = hymnservice.HymnDetail

// HymnListItem is a catalogue row in a list response.
type HymnListItem = index.HymnRow

// HymnListResponse wraps paginated hymn listings.
type HymnListResponse struct {
	Hymns []HymnListItem `json:"hymns" validate:"required"`
	Total int            `json:"total" example:"42" validate:"required"`
}

// TransposeRequest is the request body for persisting a hymn in a new key.
type TransposeRequest struct {
	Key string `json:"key" example:"A" validate:"required"`
}

// StepRequest is the request body for stepping the displayed key.
type StepRequest struct {
	// Key is the key currently displayed; empty means the hymn's own key.
	Key string `json:"key,omitempty" example:"G"`
	// Dir is +1 for a half step up, -1 for a half step down.
	Dir int `json:"dir" example:"1" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult = index.SearchResult

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// ChordListResponse lists the dictionary and how the catalogue uses it.
type ChordListResponse struct {
	Dictionary []string           `json:"dictionary" validate:"required"`
	Usage      []index.ChordCount `json:"usage" validate:"required"`
}

// ChordResponse describes one chord.
type ChordResponse struct {
	Name       string         `json:"name" example:"Dbm7" validate:"required"`
	Normalized string         `json:"normalized" example:"C#m7" validate:"required"`
	Shape      chord.Shape    `json:"shape" validate:"required"`
	HasDiagram bool           `json:"has_diagram"`
	Hymns      []HymnListItem `json:"hymns" validate:"required"`
}

// CapoResponse is the capo fret for a key pair.
type CapoResponse struct {
	Original string `json:"original" example:"D"`
	Selected string `json:"selected" example:"C"`
	Capo     int    `json:"capo" example:"2"`
}

// PadRequest carries lyric lines to pad under their chords.
type PadRequest struct {
	Lines []string `json:"lines" validate:"required"`
}

// PadResponse carries the padded lines.
type PadResponse struct {
	Lines []string `json:"lines" validate:"required"`
}

// AudioFile describes one stored recording.
type AudioFile = storage.AudioFile

// AudioListResponse lists the stored recordings.
type AudioListResponse struct {
	Files []AudioFile `json:"files" validate:"required"`
}

// AudioUploadResponse is returned after a successful recording upload.
type AudioUploadResponse struct {
	Filename string `json:"filename" example:"042.mp3" validate:"required"`
	Size     int64  `json:"size" example:"12345" validate:"required"`
	URL      string `json:"url" example:"/audio/042.mp3" validate:"required"`
}
