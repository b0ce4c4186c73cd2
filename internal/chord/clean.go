package chord

import "strings"

// placeholders are chord tokens that mark a beat without a chord.
var placeholders = map[string]struct{}{
	"sem acorde": {},
	".":          {},
	"..":         {},
	"...":        {},
}

// IsPlaceholder reports whether token is a degenerate chord token
// ("sem acorde", dots, or blank). Placeholders have no fretboard diagram.
func IsPlaceholder(token string) bool {
	t := strings.TrimSpace(token)
	if t == "" {
		return true
	}
	_, ok := placeholders[strings.ToLower(t)]
	return ok
}

// CleanName strips decoration dots and any trailing "|annotation" fragment
// so the token can be used for dictionary lookup or selection matching.
func CleanName(token string) string {
	if i := strings.Index(token, "|"); i >= 0 {
		token = token[:i]
	}
	return strings.TrimSpace(strings.ReplaceAll(token, ".", ""))
}
