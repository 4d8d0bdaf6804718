package geocode

import (
	"context"
	"encoding/json"
	"os"

	"github.com/solidata/solidata/pkg/errors"
	"github.com/solidata/solidata/pkg/logging"
)

// Cache is a persistent search-key→result map backed by one flat JSON
// document. The whole document is loaded at open and written back only
// when an entry was added, so repeated runs against an unchanged cache
// leave the file untouched and produce identical output.
//
// No-match lookups are cached as empty entries: asking the geocoder again
// for an address it could not resolve wastes quota.
type Cache struct {
	path    string
	entries map[string]map[string]string
	dirty   bool
}

// OpenCache loads a cache file, creating an empty one when the file does
// not exist yet.
func OpenCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return c, nil
}

// Get returns the cached result for a search key. The second value
// distinguishes a cached no-match (nil-or-empty map, true) from a key
// never looked up (false).
func (c *Cache) Get(searchKey string) (map[string]string, bool) {
	entry, ok := c.entries[searchKey]
	return entry, ok
}

// Put stores a result, marking the cache dirty. Empty results are stored
// too.
func (c *Cache) Put(searchKey string, result map[string]string) {
	if result == nil {
		result = map[string]string{}
	}
	c.entries[searchKey] = result
	c.dirty = true
}

// Len returns the number of cached keys.
func (c *Cache) Len() int { return len(c.entries) }

// Save writes the cache back to its file, but only when an entry was
// added since open.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.WrapParse("json", c.path, err)
	}
	if err := os.WriteFile(c.path, append(data, '\n'), 0o644); err != nil {
		return errors.WrapIO("write", c.path, err)
	}
	c.dirty = false
	logging.Info().Str("path", c.path).Int("entries", len(c.entries)).
		Msg("geocode cache saved")
	return nil
}

// CachedGeocoder wraps a Geocoder with a Cache. Lookups hit the cache
// first; misses go to the wrapped geocoder and the result, match or not,
// is cached.
type CachedGeocoder struct {
	cache    *Cache
	geocoder Geocoder
}

// NewCachedGeocoder wraps geocoder with cache.
func NewCachedGeocoder(cache *Cache, geocoder Geocoder) *CachedGeocoder {
	return &CachedGeocoder{cache: cache, geocoder: geocoder}
}

// Lookup resolves a search key through the cache. An empty search key is
// not worth querying and resolves to no match.
func (g *CachedGeocoder) Lookup(ctx context.Context, searchKey, country string) (map[string]string, error) {
	if searchKey == "" {
		return nil, nil
	}
	if entry, ok := g.cache.Get(searchKey); ok {
		return entry, nil
	}

	result, err := g.geocoder.Lookup(ctx, searchKey, country)
	if err != nil {
		return nil, err
	}
	g.cache.Put(searchKey, result)
	return result, nil
}
