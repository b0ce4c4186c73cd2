package models

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/cifra/internal/tone"
)

// codeRe keeps hymn codes usable as file names.
var codeRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidCode reports whether code is a well-formed hymn code.
func ValidCode(code string) bool {
	return codeRe.MatchString(code)
}

var errBadKey = errors.New("must start with a note name (A-G)")

func keyRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := tone.PitchClass(s); !ok {
		return errBadKey
	}
	return nil
}

// Validate checks the structural rules of a hymn.
func (h *Hymn) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.Code, validation.Required, validation.Match(codeRe)),
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.Level, validation.Min(1), validation.Max(5)),
		validation.Field(&h.Tone),
		validation.Field(&h.Measures),
		validation.Field(&h.Score),
	)
}

// Validate checks both keys have a parseable root.
func (t Tone) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Original, validation.Required, validation.By(keyRule)),
		validation.Field(&t.Selected, validation.By(keyRule)),
	)
}

// Validate rejects negative time signatures.
func (m Measures) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.SigN, validation.Min(0)),
		validation.Field(&m.SigD, validation.Min(0)),
	)
}

// Validate validates every stanza.
func (s Score) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Stanzas),
	)
}

// Validate checks the stanza type and, for refs, the reference pattern.
func (s Stanza) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Type, validation.Required,
			validation.In(StanzaVerse, StanzaChorus, StanzaRef)),
		validation.Field(&s.Ref,
			validation.When(s.Type == StanzaRef, validation.Required, validation.Match(refRe))),
	)
}
