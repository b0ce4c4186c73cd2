package tone

import (
	"errors"
	"testing"

	"github.com/starford/cifra/internal/apperr"
)

func TestCapoPosition(t *testing.T) {
	cases := []struct {
		original, selected string
		want               int
	}{
		{"C", "C", 0},
		{"D", "C", 2},
		{"C", "D", 10},
		{"G", "A", 10},
		{"A", "G", 2},
		{"Ab", "G", 1},
		{"H", "C", 0},
		{"C", "F#", 0},
		{"", "", 0},
	}
	for _, c := range cases {
		if got := CapoPosition(c.original, c.selected); got != c.want {
			t.Errorf("CapoPosition(%q, %q) = %d, want %d", c.original, c.selected, got, c.want)
		}
	}
}

func TestCapoPosition_Range(t *testing.T) {
	for _, o := range Keys {
		for _, s := range Keys {
			if got := CapoPosition(o, s); got < 0 || got > 11 {
				t.Errorf("CapoPosition(%q, %q) = %d out of range", o, s, got)
			}
		}
	}
}

func TestDelta(t *testing.T) {
	cases := []struct {
		current, target string
		want            int
	}{
		{"G", "A", 2},
		{"A", "G", 10},
		{"C", "C", 0},
		{"F#", "G", 1},
		{"Em", "Gb", 2},
		{"B", "C", 1},
	}
	for _, c := range cases {
		got, err := Delta(c.current, c.target)
		if err != nil {
			t.Errorf("Delta(%q, %q) error: %v", c.current, c.target, err)
			continue
		}
		if got != c.want {
			t.Errorf("Delta(%q, %q) = %d, want %d", c.current, c.target, got, c.want)
		}
	}
}

func TestDelta_InvalidKey(t *testing.T) {
	if _, err := Delta("C", "F#"); !errors.Is(err, apperr.ErrInvalidKey) {
		t.Errorf("target F# err = %v, want ErrInvalidKey", err)
	}
	if _, err := Delta("H", "C"); !errors.Is(err, apperr.ErrInvalidKey) {
		t.Errorf("current H err = %v, want ErrInvalidKey", err)
	}
}

func TestStep(t *testing.T) {
	cases := []struct {
		key  string
		dir  int
		want string
	}{
		{"B", 1, "C"},
		{"C", -1, "B"},
		{"G", 1, "Ab"},
		{"Ab", -1, "G"},
		{"E", 1, "F"},
		{"F#", 1, "G"},
		{"C#", -1, "C"},
		{"D", 0, "D"},
	}
	for _, c := range cases {
		got, err := Step(c.key, c.dir)
		if err != nil {
			t.Errorf("Step(%q, %d) error: %v", c.key, c.dir, err)
			continue
		}
		if got != c.want {
			t.Errorf("Step(%q, %d) = %q, want %q", c.key, c.dir, got, c.want)
		}
	}
	if _, err := Step("?", 1); !errors.Is(err, apperr.ErrInvalidKey) {
		t.Errorf("Step(?) err = %v, want ErrInvalidKey", err)
	}
}

func TestStep_FullCycle(t *testing.T) {
	key := "C"
	for i := 0; i < 12; i++ {
		var err error
		if key, err = Step(key, 1); err != nil {
			t.Fatal(err)
		}
	}
	if key != "C" {
		t.Errorf("12 steps up from C = %q", key)
	}
}

func TestCanonical(t *testing.T) {
	cases := map[string]string{
		"C#":  "Db",
		"Em":  "E",
		"A#7": "Bb",
		"G":   "G",
		"B#":  "C",
		"x":   "",
	}
	for in, want := range cases {
		if got := Canonical(in); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", in, got, want)
		}
	}
}
