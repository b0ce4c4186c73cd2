package parser

import (
	"iter"
	"slices"
	"strings"

	"github.com/starford/cifra/internal/chord"
)

// Other is the catch-all root bucket for tokens without a parseable root.
const Other = "other"

// RootGroup collects the distinct chords sharing a normalised root.
type RootGroup struct {
	Root   string   `json:"root"`
	Chords []string `json:"chords"`
}

// DistinctChords returns the cleaned chord names used across lines, in
// first-seen order. Placeholder tokens are skipped.
func DistinctChords(lines ...string) []string {
	return CollectChords(nil, slices.Values(lines))
}

// CollectChords is DistinctChords over a whole score: the bare chord tokens
// of an introduction (which may carry a "|annotation") come first, then
// the markers of every line.
func CollectChords(intro []string, lines iter.Seq[string]) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(token string) {
		name := chord.CleanName(token)
		if chord.IsPlaceholder(name) {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, tok := range intro {
		if strings.Contains(tok, "[") {
			for m := range Markers(tok) {
				add(m.Chord)
			}
			continue
		}
		add(tok)
	}
	for line := range lines {
		for m := range Markers(line) {
			add(m.Chord)
		}
	}
	return out
}

// GroupByRoot buckets chord tokens by their sharp-spelled root, keeping the
// order in which roots first appear. Tokens without a root land in the
// Other bucket, which is dropped when it holds nothing but placeholders.
func GroupByRoot(chords []string) []RootGroup {
	var order []string
	groups := make(map[string][]string)
	realOther := false

	for _, c := range chords {
		key := Other
		if root, _, ok := chord.SplitRoot(chord.Normalize(chord.CleanName(c))); ok {
			key = root
		} else if !chord.IsPlaceholder(chord.CleanName(c)) {
			realOther = true
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}

	out := make([]RootGroup, 0, len(order))
	for _, key := range order {
		if key == Other && !realOther {
			continue
		}
		out = append(out, RootGroup{Root: key, Chords: groups[key]})
	}
	return out
}
