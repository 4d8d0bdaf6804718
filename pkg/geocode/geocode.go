// Package geocode resolves initiative addresses to geographic containers.
// The package owns the search-key construction and the persistent result
// cache; the HTTP mechanics, rate limiting and authentication live behind
// the Geocoder interface and belong to the service adapter implementing
// it.
package geocode

import (
	"context"
	"regexp"
	"strings"

	"github.com/solidata/solidata/internal/vocab"
)

// Result field names produced by a Geocoder. Adapters translate their
// service's response into these keys.
const (
	ResultStreet   = "street"
	ResultCity     = "city"
	ResultState    = "state"
	ResultPostcode = "postcode"
	ResultCountry  = "country"
	ResultLat      = "lat"
	ResultLon      = "lon"
	ResultGeoURI   = "geo_uri"
)

// Geocoder resolves one search key to a map of result fields. An empty
// map (or nil) means the key did not match any location; that is not an
// error. Errors are reserved for transport and quota failures.
type Geocoder interface {
	Lookup(ctx context.Context, searchKey, country string) (map[string]string, error)
}

// maxSearchKeyLen is the longest search key worth sending; longer keys are
// trimmed a trailing segment at a time.
const maxSearchKeyLen = 130

// minSearchKeyLen is the shortest search key worth querying at all.
const minSearchKeyLen = 5

var (
	ukPostcode  = regexp.MustCompile(`([Gg][Ii][Rr] 0[Aa]{2})|((([A-Za-z][0-9]{1,2})|(([A-Za-z][A-Ha-hJ-Yj-y][0-9]{1,2})|(([A-Za-z][0-9][A-Za-z])|([A-Za-z][A-Ha-hJ-Yj-y][0-9][A-Za-z]?))))\s?[0-9][A-Za-z]{2})`)
	specialChar = regexp.MustCompile(`[!@#$%^&*-]`)
	countryCode = regexp.MustCompile(`^[A-Z][A-Z]$`)
)

// BuildSearchKey assembles a geocoder query from address parts, in order.
// Empty parts are dropped, special characters are spaced out of parts
// containing a UK postcode, and bare 2-letter country codes are expanded
// to country names. The joined key is trimmed to the length budget by
// dropping trailing segments; a key too short to plausibly match anything
// comes back "".
func BuildSearchKey(parts ...string) string {
	var cleaned []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if ukPostcode.MatchString(part) {
			part = specialChar.ReplaceAllString(part, " ")
		}
		if countryCode.MatchString(part) {
			if name := vocab.CountryName(part); name != "" {
				part = name
			}
		}
		cleaned = append(cleaned, part)
	}

	key := strings.Join(cleaned, ", ")
	for len(key) > maxSearchKeyLen {
		segments := strings.Split(key, ",")
		key = strings.Join(segments[:len(segments)-1], ",")
	}
	if len(key) < minSearchKeyLen {
		return ""
	}
	return key
}
