package parser

import (
	"slices"
	"strings"
	"testing"
)

func TestParseLine_PlainAndAnnotated(t *testing.T) {
	line := "[G]Glory to [Am7|x2]God, [D7]a-[...]men"
	ms := ParseLine(line)
	if len(ms) != 4 {
		t.Fatalf("len(markers) = %d, want 4", len(ms))
	}

	if ms[0].Chord != "G" || ms[0].Word != "Glory" || ms[0].HasAnnotation {
		t.Errorf("marker 0 = %+v", ms[0])
	}
	if ms[1].Chord != "Am7" || ms[1].Annotation != "x2" || !ms[1].HasAnnotation || ms[1].Word != "God," {
		t.Errorf("marker 1 = %+v", ms[1])
	}
	if ms[2].Word != "a-" {
		t.Errorf("marker 2 word = %q, want %q", ms[2].Word, "a-")
	}
	if ms[3].Chord != "..." || ms[3].Word != "men" {
		t.Errorf("marker 3 = %+v", ms[3])
	}

	// Offsets point at the bracket span.
	if got := line[ms[1].Start:ms[1].End]; got != "[Am7|x2]" {
		t.Errorf("span = %q, want %q", got, "[Am7|x2]")
	}
}

func TestMarkers_Restartable(t *testing.T) {
	seq := Markers("[C]one [G]two")
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if a, b := count(), count(); a != 2 || b != 2 {
		t.Errorf("counts = %d, %d; want 2, 2", a, b)
	}
}

func TestMarkers_EarlyStop(t *testing.T) {
	var got []string
	for m := range Markers("[C]a [D]b [E]c") {
		got = append(got, m.Chord)
		if m.Chord == "D" {
			break
		}
	}
	if strings.Join(got, ",") != "C,D" {
		t.Errorf("got %v", got)
	}
}

func TestParseLine_NoMarkers(t *testing.T) {
	if ms := ParseLine("just lyrics here"); len(ms) != 0 {
		t.Errorf("expected no markers, got %+v", ms)
	}
}

func TestParseLine_AdjacentMarkers(t *testing.T) {
	ms := ParseLine("[C][G]word")
	if len(ms) != 2 {
		t.Fatalf("len = %d, want 2", len(ms))
	}
	if ms[0].Word != "" || ms[1].Word != "word" {
		t.Errorf("words = %q, %q", ms[0].Word, ms[1].Word)
	}
}

func TestReplaceChords_PreservesText(t *testing.T) {
	line := "  [G]Glo__ry [D|x1]be to [sem acorde]God!  "
	got := ReplaceChords(line, strings.ToLower)
	want := "  [g]Glo__ry [d|x1]be to [sem acorde]God!  "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReplaceChords_EmptyAnnotationKept(t *testing.T) {
	got := ReplaceChords("[C|]x", func(string) string { return "D" })
	if got != "[D|]x" {
		t.Errorf("got %q, want %q", got, "[D|]x")
	}
}

func TestStripMarkers(t *testing.T) {
	got := StripMarkers("[G]Glo__ry [D|x1]be to God")
	if got != "Glory be to God" {
		t.Errorf("got %q", got)
	}
}

func TestPadWordsUnderChords(t *testing.T) {
	cases := []struct{ in, want string }{
		{"[C]cat", "[C]cat"},
		{"[Cm7]cat", "[Cm7]cat"},
		{"[Am7|x2]a", "[Am7|x2]a___"},
		{"[F#m7]a [G]b", "[F#m7]a___ [G]b"},
		{"[Bm7(5-)]é", "[Bm7(5-)]é______"},
		{"[D|xyz]o", "[D|xyz]o__"},
		{"no chords", "no chords"},
		{"[C7] ", "[C7]__ "},
	}
	for _, c := range cases {
		if got := PadWordsUnderChords(c.in); got != c.want {
			t.Errorf("PadWordsUnderChords(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPadWordsUnderChords_NoDoublePadding(t *testing.T) {
	line := "[Am7|x2]a [C#m7]b [G]Glory"
	once := PadWordsUnderChords(line)
	if twice := PadWordsUnderChords(once); twice != once {
		t.Errorf("re-padding changed line: %q -> %q", once, twice)
	}
}

func TestPadLines(t *testing.T) {
	got := PadLines([]string{"[Am]a", "plain"})
	if got[0] != "[Am]a_" || got[1] != "plain" {
		t.Errorf("PadLines = %q", got)
	}
}

func TestDistinctChords(t *testing.T) {
	got := DistinctChords("[G]a [D.]b [G|x1]c", "[sem acorde]d [...]e [Em]f [D]g")
	want := []string{"G", "D", "Em"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("DistinctChords = %v, want %v", got, want)
	}
}

func TestCollectChords_IntroFirst(t *testing.T) {
	intro := []string{"C", "G|x2", "...", "[Am]"}
	lines := slices.Values([]string{"[F]a [C]b"})
	got := CollectChords(intro, lines)
	want := []string{"C", "G", "Am", "F"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("CollectChords = %v, want %v", got, want)
	}
}

func TestGroupByRoot(t *testing.T) {
	groups := GroupByRoot([]string{"G", "Em", "G7", "Gb", "E/G#", "..."})
	if len(groups) != 3 {
		t.Fatalf("groups = %+v, want 3 (other hidden)", groups)
	}
	if groups[0].Root != "G" || len(groups[0].Chords) != 2 {
		t.Errorf("group G = %+v", groups[0])
	}
	if groups[1].Root != "E" || len(groups[1].Chords) != 2 {
		t.Errorf("group E = %+v", groups[1])
	}
	if groups[2].Root != "F#" || groups[2].Chords[0] != "Gb" {
		t.Errorf("group F# = %+v", groups[2])
	}
}

func TestGroupByRoot_OtherShownWithRealTokens(t *testing.T) {
	groups := GroupByRoot([]string{"C", "N.C.", "..."})
	last := groups[len(groups)-1]
	if last.Root != Other || len(last.Chords) != 2 {
		t.Errorf("other bucket = %+v", last)
	}
}
