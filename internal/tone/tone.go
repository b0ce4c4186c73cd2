// Package tone works with the 12 selectable keys: capo positions, semitone
// deltas between keys and half-step stepping.
package tone

import (
	"fmt"
	"strings"

	"github.com/starford/cifra/internal/apperr"
	"github.com/starford/cifra/internal/chord"
)

// Keys is the flats-preferred key list shown by key and capo selectors.
// Chord names use chord.SharpScale instead.
var Keys = [12]string{"Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G"}

// Index returns the position of key in Keys, or -1.
func Index(key string) int {
	for i, k := range Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// IsKey reports whether key is one of the 12 recognised spellings.
func IsKey(key string) bool {
	return Index(key) >= 0
}

// PitchClass resolves any key spelling with a parseable root ("F#", "Ebm",
// "C") to its pitch class. It is lenient on purpose: it reads keys that
// come from hymn data, not from user input.
func PitchClass(key string) (int, bool) {
	root, _, ok := chord.SplitRoot(strings.TrimSpace(key))
	if !ok {
		return 0, false
	}
	return chord.PitchClass(root)
}

// Delta returns the upward semitone distance (0-11) from the current key to
// the target key. target must be one of Keys; current may be any spelling.
func Delta(current, target string) (int, error) {
	if !IsKey(target) {
		return 0, fmt.Errorf("tone: target %q: %w", target, apperr.ErrInvalidKey)
	}
	from, ok := PitchClass(current)
	if !ok {
		return 0, fmt.Errorf("tone: current %q: %w", current, apperr.ErrInvalidKey)
	}
	to, _ := PitchClass(target)
	return ((to-from)%12 + 12) % 12, nil
}

// Step moves key one half step up (dir > 0) or down (dir < 0) around the
// cycle of Keys, wrapping B->C and C->B. A key outside Keys is first mapped
// to its flats-preferred spelling.
func Step(key string, dir int) (string, error) {
	i := Index(key)
	if i < 0 {
		pc, ok := PitchClass(key)
		if !ok {
			return "", fmt.Errorf("tone: step %q: %w", key, apperr.ErrInvalidKey)
		}
		i = fromPitchClass(pc)
	}
	switch {
	case dir > 0:
		i++
	case dir < 0:
		i--
	}
	return Keys[(i+12)%12], nil
}

// CapoPosition returns the fret (0-11) at which to clamp a capo so that
// chord shapes played in selectedKey sound in originalKey. Unknown keys
// yield 0.
func CapoPosition(originalKey, selectedKey string) int {
	o, s := Index(originalKey), Index(selectedKey)
	if o < 0 || s < 0 {
		return 0
	}
	diff := o - s
	if diff < 0 {
		diff += 12
	}
	return diff
}

// Canonical returns the Keys spelling of any key with a parseable root
// ("C#" -> "Db", "Em" -> "E"), or "" when key has none.
func Canonical(key string) string {
	pc, ok := PitchClass(key)
	if !ok {
		return ""
	}
	return Keys[fromPitchClass(pc)]
}

// fromPitchClass maps a pitch class to its index in Keys (Ab = 8).
func fromPitchClass(pc int) int {
	return ((pc-8)%12 + 12) % 12
}
