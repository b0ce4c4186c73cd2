// Package transpose rewrites every chord of a hymn into a new key.
package transpose

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/cifra/internal/chord"
	"github.com/starford/cifra/internal/models"
	"github.com/starford/cifra/internal/parser"
	"github.com/starford/cifra/internal/tone"
)

// Option configures a transposition.
type Option func(*options)

type options struct {
	logger *slog.Logger
	strict bool
}

// WithLogger sets the logger that receives malformed-chord reports.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithStrict makes Hymn return an error listing every chord it could not
// transpose. The returned hymn is still complete.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Hymn returns a copy of h with every chord moved from the current key
// (tone.selected) to newKey, and tone.selected set to newKey. newKey must be
// one of tone.Keys. Chords that cannot be parsed are kept as they are and
// logged.
func Hymn(h models.Hymn, newKey string, opts ...Option) (models.Hymn, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	delta, err := tone.Delta(h.Tone.Current(), newKey)
	if err != nil {
		return models.Hymn{}, fmt.Errorf("transpose %s: %w", h.Code, err)
	}

	t := transposer{code: h.Code, delta: delta, log: o.logger}
	out := h.Clone()

	for i, tok := range out.Score.Introduction {
		out.Score.Introduction[i] = t.token(tok)
	}
	for i := range out.Score.Stanzas {
		s := &out.Score.Stanzas[i]
		if s.IsRef() {
			continue
		}
		for j, line := range s.Text {
			s.Text[j] = parser.ReplaceChords(line, t.chord)
		}
	}
	out = models.ResolveRefs(out)
	out.Tone.Selected = newKey

	if o.strict && len(t.errs) > 0 {
		return out, errors.Join(t.errs...)
	}
	return out, nil
}

// Step transposes h one half step up (dir > 0) or down (dir < 0) from its
// current key.
func Step(h models.Hymn, dir int, opts ...Option) (models.Hymn, error) {
	key, err := tone.Step(h.Tone.Current(), dir)
	if err != nil {
		return models.Hymn{}, fmt.Errorf("transpose %s: %w", h.Code, err)
	}
	return Hymn(h, key, opts...)
}

// Chord transposes a single chord token by delta semitones. See
// chord.Transpose.
func Chord(name string, delta int) (string, error) {
	return chord.Transpose(name, delta)
}

// Line transposes the chord markers of a single line by delta semitones.
func Line(line string, delta int) string {
	t := transposer{delta: delta, log: slog.Default()}
	return parser.ReplaceChords(line, t.chord)
}

type transposer struct {
	code  string
	delta int
	log   *slog.Logger
	errs  []error
}

func (t *transposer) chord(name string) string {
	out, err := chord.Transpose(name, t.delta)
	if err != nil {
		t.log.Warn("transpose: chord left unchanged",
			slog.String("hymn", t.code),
			slog.String("chord", name),
			slog.String("error", err.Error()))
		t.errs = append(t.errs, err)
	}
	return out
}

// token transposes an introduction token. Tokens are bare chord names with
// an optional "|annotation", or full markers.
func (t *transposer) token(tok string) string {
	if strings.Contains(tok, "[") {
		return parser.ReplaceChords(tok, t.chord)
	}
	name, annotation, found := strings.Cut(tok, "|")
	if !found {
		return t.chord(tok)
	}
	return t.chord(name) + "|" + annotation
}
