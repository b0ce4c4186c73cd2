package parser

import (
	"strings"
	"unicode/utf8"
)

// Filler is appended after a word so a chord label does not overlap the
// next one. The display layer renders it invisible.
const Filler = "_"

// PadWordsUnderChords widens the word under each chord marker to at least
// the width of its label: the chord length plus half the annotation length
// (rounded up). Existing filler counts as part of the word, so padding an
// already padded line changes nothing.
func PadWordsUnderChords(line string) string {
	return rewrite(line, func(m Marker) string {
		need := minWidth(m) - utf8.RuneCountInString(m.Word)
		if need > 0 {
			m.Word += strings.Repeat(Filler, need)
		}
		return m.Format()
	})
}

// PadLines pads every line of a stanza.
func PadLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = PadWordsUnderChords(l)
	}
	return out
}

func minWidth(m Marker) int {
	w := utf8.RuneCountInString(m.Chord)
	if m.HasAnnotation {
		w += (utf8.RuneCountInString(m.Annotation) + 1) / 2
	}
	return w
}
