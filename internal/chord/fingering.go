package chord

import "sort"

// Shape is a guitar fingering: one fret and one finger per string.
// Frets: -1 muted, 0 open, n>0 fret number. Fingers: 0 none, 1-4 finger.
type Shape struct {
	Frets   [6]int `json:"frets"`
	Fingers [6]int `json:"fingers"`
}

// fallback is returned for chords missing from the dictionary.
var fallback = Shape{}

// IsFallback reports whether s is the "no diagram available" shape.
func (s Shape) IsFallback() bool {
	return s == fallback
}

// Lookup returns the dictionary shape for a chord token. The token is
// cleaned and normalised first; slash chords resolve to their upper chord.
func Lookup(token string) (Shape, bool) {
	name := Normalize(CleanName(token))
	if head, _, ok := SplitBass(name); ok {
		name = head
	}
	s, ok := shapes[name]
	return s, ok
}

// GuitarChordData returns the shape for token, or the all-zero fallback
// when the chord is unknown. Callers should treat the fallback as
// "no visual info" rather than an open-string chord.
func GuitarChordData(token string) Shape {
	if s, ok := Lookup(token); ok {
		return s
	}
	return fallback
}

// Names returns every chord name in the dictionary, sorted.
func Names() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
