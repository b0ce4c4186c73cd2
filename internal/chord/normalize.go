// Package chord handles chord names: root spelling, cleaning of decorated
// tokens, interval transposition and the guitar fingering dictionary.
package chord

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedChord is returned when a chord token has no recognisable root.
var ErrMalformedChord = errors.New("malformed chord")

// SharpScale is the sharps-preferred chromatic spelling used for chord names.
// Key selection uses a different, flats-preferred table (see package tone).
var SharpScale = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Qualities is the fixed list of chord suffixes covered by the fingering
// dictionary and by NormalizationMap.
var Qualities = []string{"", "m", "7", "m7", "7M", "sus4", "°", "m7(5-)", "6", "9"}

var (
	rootRe = regexp.MustCompile(`^[A-G][b#]{0,2}`)
	bassRe = regexp.MustCompile(`^[A-G][b#]{0,2}$`)
)

// naturals maps each letter to its pitch class.
var naturals = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// flatToSharp is the 12-entry semitone table for single-accidental and
// natural roots.
var flatToSharp = map[string]string{
	"C": "C", "C#": "C#", "Db": "C#",
	"D": "D", "D#": "D#", "Eb": "D#",
	"E": "E", "Fb": "E", "E#": "F",
	"F": "F", "F#": "F#", "Gb": "F#",
	"G": "G", "G#": "G#", "Ab": "G#",
	"A": "A", "A#": "A#", "Bb": "A#",
	"B": "B", "Cb": "B", "B#": "C",
}

// Normalize canonicalises the root (and slash bass) of a chord to sharp
// spelling. The quality suffix is passed through untouched and input without
// a recognisable root is returned as is.
func Normalize(text string) string {
	return NormalizeOpt(text, true)
}

// NormalizeOpt is Normalize with control over the slash bass.
func NormalizeOpt(text string, normalizeSlashBass bool) string {
	if head, bass, ok := SplitBass(text); ok {
		head = NormalizeOpt(head, false)
		if normalizeSlashBass {
			bass = NormalizeOpt(bass, false)
		}
		return head + "/" + bass
	}

	root, suffix, ok := SplitRoot(text)
	if !ok {
		return text
	}
	// Accidentals running on past the root belong to it; leaving them in
	// the suffix would let a second pass read a different root.
	for suffix != "" && (suffix[0] == 'b' || suffix[0] == '#') {
		root, suffix = root+suffix[:1], suffix[1:]
	}
	return NormalizeRoot(root) + suffix
}

// SplitRoot separates the leading root (letter plus up to two accidentals)
// from the rest of the chord.
func SplitRoot(text string) (root, suffix string, ok bool) {
	loc := rootRe.FindStringIndex(text)
	if loc == nil {
		return "", text, false
	}
	return text[:loc[1]], text[loc[1]:], true
}

// SplitBass splits a slash chord at its last "/" when what follows is a
// bare note (C/E, Am7/G). Extensions written after a slash (A7/9,
// C7(9/11)) are not basses and stay in the chord.
func SplitBass(text string) (head, bass string, ok bool) {
	i := strings.LastIndex(text, "/")
	if i < 0 || !bassRe.MatchString(text[i+1:]) {
		return text, "", false
	}
	return text[:i], text[i+1:], true
}

// NormalizeRoot spells a bare root on the sharp scale. Unknown roots are
// returned unchanged.
func NormalizeRoot(root string) string {
	if s, ok := flatToSharp[root]; ok {
		return s
	}
	pc, ok := pitchOf(root)
	if !ok {
		return root
	}
	return SharpScale[pc]
}

// PitchClass returns the pitch class (0 = C) of a root spelled with up to
// two accidentals.
func PitchClass(root string) (int, bool) {
	if root == "" || rootRe.FindString(root) != root {
		return 0, false
	}
	return pitchOf(root)
}

// pitchOf sums a letter and any number of trailing accidentals.
func pitchOf(root string) (int, bool) {
	if root == "" {
		return 0, false
	}
	pc, ok := naturals[root[0]]
	if !ok {
		return 0, false
	}
	for _, acc := range root[1:] {
		switch acc {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, false
		}
	}
	return mod12(pc), true
}

// NormalizationMap precomputes the flat-to-sharp spelling of every anomalous
// root combined with every quality in Qualities.
func NormalizationMap() map[string]string {
	var roots []string
	for _, letter := range "CDEFGAB" {
		l := string(letter)
		roots = append(roots, l+"b", l+"bb", l+"##")
	}
	roots = append(roots, "E#", "B#")

	out := make(map[string]string, len(roots)*len(Qualities))
	for _, r := range roots {
		for _, q := range Qualities {
			out[r+q] = Normalize(r + q)
		}
	}
	return out
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}
