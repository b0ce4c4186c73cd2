// Package models defines the hymn score domain types.
package models

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"time"
)

// StanzaType tells whether a stanza is a verse, a chorus, or a reference
// to another stanza of the same score.
type StanzaType string

const (
	StanzaVerse  StanzaType = "verse"
	StanzaChorus StanzaType = "chorus"
	StanzaRef    StanzaType = "ref"
)

// Hymn is one songbook entry with its chord-annotated score.
type Hymn struct {
	Code     string   `json:"code"`
	Title    string   `json:"title"`
	Version  string   `json:"version,omitempty"`
	Level    int      `json:"level,omitempty"` // difficulty 1-5, 0 when unset
	Rhythm   string   `json:"rhythm,omitempty"`
	Tone     Tone     `json:"tone"`
	Measures Measures `json:"measures"`
	Time     Time     `json:"time"`
	Score    Score    `json:"score"`
}

// Tone holds the authored key and the key currently displayed.
type Tone struct {
	Original string `json:"original"`
	Selected string `json:"selected,omitempty"`
}

// Current returns the displayed key, defaulting to the original one.
func (t Tone) Current() string {
	if t.Selected != "" {
		return t.Selected
	}
	return t.Original
}

// Measures is the time signature.
type Measures struct {
	SigN int `json:"sigN,omitempty"`
	SigD int `json:"sigD,omitempty"`
}

// Time carries display tempo and duration info (seconds).
type Time struct {
	Duration      float64 `json:"duration,omitempty"`
	IntroDuration float64 `json:"introDuration,omitempty"`
	Text          string  `json:"text,omitempty"`
}

// Score is the playable content: an introduction of chord-only tokens
// followed by the stanzas.
type Score struct {
	Introduction []string `json:"introduction"`
	Stanzas      []Stanza `json:"stanzas"`
}

// Stanza is a verse, a chorus, or a reference to another stanza.
type Stanza struct {
	Code string     `json:"code,omitempty"`
	Type StanzaType `json:"type"`
	Text []string   `json:"text,omitempty"`
	Ref  string     `json:"ref,omitempty"`

	// Target is the referenced stanza index once a ref is resolved.
	Target   int  `json:"-"`
	Resolved bool `json:"-"`
}

// IsRef reports whether the stanza points at another stanza.
func (s Stanza) IsRef() bool {
	return s.Type == StanzaRef
}

// Clone returns a deep copy of h, so an updated hymn never shares slices
// with the one a consumer is displaying.
func (h Hymn) Clone() Hymn {
	out := h
	out.Score.Introduction = slices.Clone(h.Score.Introduction)
	if h.Score.Stanzas != nil {
		out.Score.Stanzas = make([]Stanza, len(h.Score.Stanzas))
		for i, s := range h.Score.Stanzas {
			s.Text = slices.Clone(s.Text)
			out.Score.Stanzas[i] = s
		}
	}
	return out
}

// Lines yields every lyric line of every stanza, refs included.
func (h Hymn) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range h.Score.Stanzas {
			for _, l := range s.Text {
				if !yield(l) {
					return
				}
			}
		}
	}
}

// Decode parses hymn JSON, defaults the selected key to the original one
// and resolves stanza references.
func Decode(data []byte) (Hymn, error) {
	var h Hymn
	if err := json.Unmarshal(data, &h); err != nil {
		return Hymn{}, fmt.Errorf("models: decode hymn: %w", err)
	}
	if h.Tone.Selected == "" {
		h.Tone.Selected = h.Tone.Original
	}
	return ResolveRefs(h), nil
}

// Encode renders h as indented JSON with a trailing newline. Ref stanzas
// are written as bare pointers; Decode fills them in again.
func Encode(h Hymn) ([]byte, error) {
	h = h.Clone()
	for i := range h.Score.Stanzas {
		if s := &h.Score.Stanzas[i]; s.IsRef() {
			s.Code, s.Text = "", nil
		}
	}
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("models: encode hymn: %w", err)
	}
	return append(data, '\n'), nil
}

// HymnMetadata is a lightweight description of a hymn file in the library.
type HymnMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
