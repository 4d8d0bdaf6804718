package dedupe

import (
	"regexp"
	"strings"

	"github.com/solidata/solidata/internal/vocab"
	"github.com/solidata/solidata/pkg/normalize"
)

var (
	whitespace      = regexp.MustCompile(`\s`)
	stopWordPattern = buildStopWordPattern()
	bracketedSuffix = regexp.MustCompile(`\([A-Z]*\)`)
	punctuation     = regexp.MustCompile(`[[:punct:]]`)
)

// buildStopWordPattern removes stop words as plain substrings, except that
// the first word in the list only matches at a leading word boundary and
// the last only at a trailing one. Whitespace is stripped before this
// pattern runs, so substring matching is what actually removes "THE",
// "AND" etc. from a concatenated name; anchoring them all would make the
// pattern a no-op.
func buildStopWordPattern() *regexp.Regexp {
	upper := make([]string, len(vocab.StopWords))
	for ix, word := range vocab.StopWords {
		upper[ix] = strings.ToUpper(word)
	}
	return regexp.MustCompile(`\b` + strings.Join(upper, "|") + `\b`)
}

// NormalizeName reduces an initiative name to a comparison form: accents
// stripped, whitespace removed, uppercased, stop words dropped, a
// bracketed suffix (e.g. a trailing "(Ltd)") removed, punctuation stripped
// and known synonyms canonicalized. Distinct organizations can collide
// after normalization, which is why name equality alone never merges rows.
func NormalizeName(name string) string {
	name = normalize.StripAccents(name)
	name = whitespace.ReplaceAllString(name, "")
	name = strings.ToUpper(name)
	name = stopWordPattern.ReplaceAllString(name, "")
	name = replaceFirst(name, bracketedSuffix, "")
	name = punctuation.ReplaceAllString(name, "")
	for _, syn := range vocab.NameSynonyms {
		name = strings.Replace(name, syn.From, syn.To, 1)
	}
	return name
}

// replaceFirst replaces only the first match of re in s.
func replaceFirst(s string, re *regexp.Regexp, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
