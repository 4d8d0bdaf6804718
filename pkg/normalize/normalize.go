// Package normalize provides the pure, stateless field normalizers used by
// conversion transforms: URLs, emails, phone numbers, social media handles
// and multi-value sub-fields.
//
// Normalizers never return an error. Malformed input falls back to a
// caller-supplied default while a note is logged at info level: one bad
// address field should be flagged, not abort an entire batch.
package normalize

import (
	"regexp"
	"strings"

	"github.com/solidata/solidata/pkg/logging"
)

var (
	urlPattern     = regexp.MustCompile(`https?\S+`)
	wwwPattern     = regexp.MustCompile(`^\s*(www\.\S+)`)
	emailPattern   = regexp.MustCompile(`^[\w+.-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?\d+[.]\d+$`)
	twitterPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?twitter\.com/`)
	facebookHost   = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:facebook\.com|fb\.me)/(.+)$`)
	facebookPrefix = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:facebook\.com|fb\.com)/`)
	nonDigit       = regexp.MustCompile(`\D`)
	ukDialPrefix   = regexp.MustCompile(`^\+?44`)
)

// URL extracts a usable http(s) URL from a free-text website field.
// A bare www.example.org gains an http:// scheme. Anything else returns
// def with an informational note logged.
func URL(val, def string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return def
	}

	if m := urlPattern.FindString(val); m != "" {
		return m
	}
	if m := wwwPattern.FindStringSubmatch(val); m != nil {
		return "http://" + m[1]
	}

	logging.Info().
		Str("value", val).
		Msg("This doesn't look like a website (maybe it's missing the http:// ?)")
	return def
}

// Email validates an email address, returning def on mismatch.
func Email(val, def string) string {
	val = strings.TrimSpace(val)
	if emailPattern.MatchString(val) {
		return val
	}
	if val != "" {
		logging.Info().Str("value", val).Msg("This doesn't look like an email address")
	}
	return def
}

// Float validates a decimal number string, returning def on mismatch.
func Float(val, def string) string {
	if floatPattern.MatchString(val) {
		return val
	}
	return def
}

// Phone normalizes a UK-centric phone number: punctuation stripped, a
// +44 or 0044 country prefix rewritten to 0, all non-digits removed.
func Phone(val string) string {
	val = strings.NewReplacer("(", "", ")", "", " ", "").Replace(val)
	val = ukDialPrefix.ReplaceAllString(val, "0")
	if strings.HasPrefix(val, "00") {
		val = val[1:]
	}
	return nonDigit.ReplaceAllString(val, "")
}

// Twitter reduces a twitter URL or decorated handle to a bare handle.
func Twitter(val string) string {
	val = strings.ToLower(strings.TrimSpace(val))
	val = twitterPattern.ReplaceAllString(val, "")
	return strings.NewReplacer("@", "", "#", "", "/", "").Replace(val)
}

// FacebookHandle reduces a facebook URL or decorated handle to a bare
// account name. Unlike Facebook it does not reject non-facebook input;
// survey respondents type bare account names directly.
func FacebookHandle(val string) string {
	val = strings.ToLower(strings.TrimSpace(val))
	val = facebookPrefix.ReplaceAllString(val, "")
	return strings.NewReplacer("@", "", "#", "", "/", "").Replace(val)
}

// Facebook extracts an account name from the first candidate that is a
// facebook.com or fb.me URL with a path component. The bare domain with no
// path is not an account. Returns def when no candidate qualifies.
func Facebook(candidates []string, def string) string {
	for _, c := range candidates {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		m := facebookHost.FindStringSubmatch(c)
		if m == nil {
			continue
		}
		path := strings.Trim(m[1], "/")
		if path == "" {
			continue
		}
		// Keep only the account segment, dropping any query or sub-path.
		if i := strings.IndexAny(path, "/?#"); i >= 0 {
			path = path[:i]
		}
		if path == "" {
			continue
		}
		return strings.NewReplacer("@", "", "#", "").Replace(path)
	}
	return def
}
