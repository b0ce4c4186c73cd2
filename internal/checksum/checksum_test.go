package checksum

import "testing"

func TestSum(t *testing.T) {
	const empty = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := Sum(nil); got != empty {
		t.Errorf("Sum(nil) = %q", got)
	}
	if Sum([]byte("a")) == Sum([]byte("b")) {
		t.Error("different inputs share a checksum")
	}
}

func TestMatch(t *testing.T) {
	sum := Sum([]byte("hymn"))
	cases := []struct {
		header string
		want   bool
	}{
		{"", true},
		{"*", true},
		{sum, true},
		{ETag(sum), true},
		{`W/` + ETag(sum), true},
		{`"other", ` + ETag(sum), true},
		{`"other"`, false},
	}
	for _, tc := range cases {
		if got := Match(tc.header, sum); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}
}
