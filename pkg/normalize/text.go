package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops combining marks, so
// "Coöperative Société" compares equal to "Cooperative Societe".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritical marks from s.
func StripAccents(s string) string {
	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return result
}

// Alphanumeric strips everything but ASCII letters and digits and
// uppercases the remainder. Used to build comparison fingerprints.
func Alphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(unicode.ToUpper(r))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
