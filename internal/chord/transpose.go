package chord

import (
	"fmt"
	"strings"
)

// Interval is a simple (within one octave) musical interval.
type Interval struct {
	Name      string
	Steps     int // diatonic steps between the letters
	Semitones int
}

// intervals indexes the simple interval used for each semitone distance.
var intervals = [12]Interval{
	{"1P", 0, 0}, {"2m", 1, 1}, {"2M", 1, 2}, {"3m", 2, 3},
	{"3M", 2, 4}, {"4P", 3, 5}, {"5d", 4, 6}, {"5P", 4, 7},
	{"6m", 5, 8}, {"6M", 5, 9}, {"7m", 6, 10}, {"7M", 6, 11},
}

// SpellingOverrides corrects the spelling produced by interval
// transposition. It is applied to roots and slash basses only.
var SpellingOverrides = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

const letters = "CDEFGAB"

// FromSemitones returns the simple interval spanning delta semitones.
// Negative and compound deltas are reduced modulo 12.
func FromSemitones(delta int) Interval {
	return intervals[mod12(delta)]
}

// Transpose moves the root (and slash bass) of name by delta semitones,
// keeping the quality suffix verbatim. Extensions after a slash (A7/9) are
// part of the suffix. Placeholder tokens and a zero delta return name
// unchanged. A token without a recognisable root is returned unchanged
// together with an error wrapping ErrMalformedChord.
func Transpose(name string, delta int) (string, error) {
	if mod12(delta) == 0 || IsPlaceholder(CleanName(name)) {
		return name, nil
	}
	iv := FromSemitones(delta)

	head, bass, slash := SplitBass(name)
	out, err := transposeRooted(head, iv)
	if err != nil {
		return name, fmt.Errorf("%w: %q", err, name)
	}
	if slash {
		b, err := transposeRooted(bass, iv)
		if err != nil {
			return name, fmt.Errorf("%w: bass of %q", err, name)
		}
		out += "/" + b
	}
	return out, nil
}

func transposeRooted(text string, iv Interval) (string, error) {
	root, suffix, ok := SplitRoot(text)
	if !ok {
		return "", ErrMalformedChord
	}
	return respell(transposeNote(root, iv)) + suffix, nil
}

// transposeNote moves a spelled note by an interval: the letter advances by
// the interval's diatonic steps and the accidental is solved so the pitch
// advances by its semitones.
func transposeNote(root string, iv Interval) string {
	pc, _ := PitchClass(root)
	letter := strings.IndexByte(letters, root[0])
	next := letters[(letter+iv.Steps)%7]
	target := mod12(pc + iv.Semitones)

	alter := mod12(target-naturals[next]+6) - 6
	switch {
	case alter > 2 || alter < -2:
		return SharpScale[target]
	case alter >= 0:
		return string(next) + strings.Repeat("#", alter)
	default:
		return string(next) + strings.Repeat("b", -alter)
	}
}

// respell applies SpellingOverrides, then folds any leftover double
// accidental onto the sharp scale.
func respell(root string) string {
	if s, ok := SpellingOverrides[root]; ok {
		return s
	}
	if strings.Contains(root, "##") || strings.Contains(root, "bb") {
		return NormalizeRoot(root)
	}
	return root
}
