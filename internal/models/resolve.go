package models

import (
	"regexp"
	"slices"
	"strconv"
)

var refRe = regexp.MustCompile(`stanzas\[(\d+)\]`)

// ParseRef extracts the stanza index from a reference such as
// "score.stanzas[2]".
func ParseRef(ref string) (int, bool) {
	m := refRe.FindStringSubmatch(ref)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ResolveRefs returns a copy of h in which every ref stanza carries the
// code and text of the stanza it points at. The ref stanza keeps its "ref"
// type. Chains of refs are followed; cycles, unparseable references and
// out-of-range indexes leave the stanza empty and unresolved.
func ResolveRefs(h Hymn) Hymn {
	out := h.Clone()
	src := h.Score.Stanzas
	for i := range out.Score.Stanzas {
		s := &out.Score.Stanzas[i]
		if !s.IsRef() {
			continue
		}
		target, ok := follow(src, i)
		if !ok {
			s.Text = []string{}
			s.Target = -1
			s.Resolved = false
			continue
		}
		s.Code = src[target].Code
		s.Text = slices.Clone(src[target].Text)
		s.Target = target
		s.Resolved = true
	}
	return out
}

// follow walks ref links starting at stanza i until it reaches a stanza
// with content of its own.
func follow(stanzas []Stanza, i int) (int, bool) {
	visited := map[int]bool{i: true}
	cur := i
	for {
		idx, ok := ParseRef(stanzas[cur].Ref)
		if !ok || idx < 0 || idx >= len(stanzas) || visited[idx] {
			return 0, false
		}
		if !stanzas[idx].IsRef() {
			return idx, true
		}
		visited[idx] = true
		cur = idx
	}
}

// DanglingRefs lists the indexes of ref stanzas that could not be resolved.
func DanglingRefs(h Hymn) []int {
	var out []int
	for i, s := range h.Score.Stanzas {
		if s.IsRef() && !s.Resolved {
			out = append(out, i)
		}
	}
	return out
}
