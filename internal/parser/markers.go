// Package parser reads chord markers embedded in lyric lines, pads the
// words beneath them and aggregates the chords a hymn uses.
package parser

import (
	"iter"
	"regexp"
	"strings"
)

// markerRe matches "[chord]" or "[chord|annotation]" plus the word that
// follows: a maximal run of characters that are neither whitespace nor "[".
var markerRe = regexp.MustCompile(`\[([^\]|]+)(?:\|([^\]]*))?\]([^\s\[]*)`)

// Marker is one chord marker found in a line.
type Marker struct {
	Chord         string `json:"chord"`
	Annotation    string `json:"annotation,omitempty"`
	HasAnnotation bool   `json:"-"`
	// Start and End are the byte offsets of the bracket span.
	Start int    `json:"start"`
	End   int    `json:"end"`
	Word  string `json:"word"`
}

// Markers lazily yields the chord markers of line from left to right. The
// sequence may be ranged over any number of times.
func Markers(line string) iter.Seq[Marker] {
	return func(yield func(Marker) bool) {
		for _, loc := range markerRe.FindAllStringSubmatchIndex(line, -1) {
			if !yield(markerAt(line, loc)) {
				return
			}
		}
	}
}

// ParseLine returns every chord marker of line.
func ParseLine(line string) []Marker {
	var out []Marker
	for m := range Markers(line) {
		out = append(out, m)
	}
	return out
}

// markerAt builds a Marker from a FindAllStringSubmatchIndex entry.
func markerAt(line string, loc []int) Marker {
	m := Marker{
		Chord: line[loc[2]:loc[3]],
		Start: loc[0],
		End:   loc[6],
		Word:  line[loc[6]:loc[7]],
	}
	if loc[4] >= 0 {
		m.Annotation = line[loc[4]:loc[5]]
		m.HasAnnotation = true
	}
	return m
}

// rewrite rebuilds line, replacing every marker (bracket span and word) by
// fn's output. Text between markers is copied through untouched.
func rewrite(line string, fn func(m Marker) string) string {
	locs := markerRe.FindAllStringSubmatchIndex(line, -1)
	if len(locs) == 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line) + 8*len(locs))
	prev := 0
	for _, loc := range locs {
		b.WriteString(line[prev:loc[0]])
		b.WriteString(fn(markerAt(line, loc)))
		prev = loc[1]
	}
	b.WriteString(line[prev:])
	return b.String()
}

// Format renders a marker back into line syntax.
func (m Marker) Format() string {
	if m.HasAnnotation {
		return "[" + m.Chord + "|" + m.Annotation + "]" + m.Word
	}
	return "[" + m.Chord + "]" + m.Word
}

// ReplaceChords rewrites the chord text of every marker in line through fn.
// Annotations, words and all text outside the markers are preserved.
func ReplaceChords(line string, fn func(chord string) string) string {
	return rewrite(line, func(m Marker) string {
		m.Chord = fn(m.Chord)
		return m.Format()
	})
}

// StripMarkers returns the plain lyric text of line: markers removed and
// "_" filler dropped.
func StripMarkers(line string) string {
	plain := rewrite(line, func(m Marker) string { return m.Word })
	return strings.ReplaceAll(plain, "_", "")
}
