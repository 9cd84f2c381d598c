package league

import (
	"strings"
	"unicode"
)

// NormalizeName folds a team name for loose matching: lower-cased with all whitespace removed.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// SameTeam reports whether two names refer to the same team under NormalizeName.
func SameTeam(a, b string) bool {
	na := NormalizeName(a)
	return na != "" && na == NormalizeName(b)
}
