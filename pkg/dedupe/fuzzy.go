package dedupe

import (
	"io"
	"os"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/solidata/solidata/pkg/errors"
	"github.com/solidata/solidata/pkg/logging"
	"github.com/solidata/solidata/pkg/normalize"
	"github.com/solidata/solidata/pkg/schema"
)

// MaxDistance is the default edit-distance bound for fuzzy matching. Two
// field fingerprints belong together when their distance is strictly
// below it.
const MaxDistance = 4

// Address columns restored from the pre-geocoding file, when one is given.
var (
	addressFields = []string{
		schema.StandardV1.HeaderOf(schema.FieldStreetAddress),
		schema.StandardV1.HeaderOf(schema.FieldLocality),
		schema.StandardV1.HeaderOf(schema.FieldRegion),
	}
	postcodeField = schema.StandardV1.HeaderOf(schema.FieldPostcode)
)

// FuzzyDeduplicator catches rows that were not assigned the same external
// key but almost certainly describe the same initiative: the name spelled
// slightly differently, the same address. Rows are first merged by exact
// key, then indexed by normalized name, then clustered within a name by
// the edit distance between fingerprints of their remaining fields.
type FuzzyDeduplicator struct {
	keyFields    []string
	domainField  string
	nameField    string
	maxDistance  int
	originalPath string
	log          zerolog.Logger
}

// FuzzyOption configures a FuzzyDeduplicator.
type FuzzyOption func(*FuzzyDeduplicator)

// WithMaxDistance overrides the edit-distance bound (exclusive).
func WithMaxDistance(dist int) FuzzyOption {
	return func(d *FuzzyDeduplicator) { d.maxDistance = dist }
}

// WithOriginalCSV points at the same data before geocoding rewrote its
// address columns. Survivors get their original address back on output,
// keeping geocoder normalization out of the canonical file. Must share the
// output schema.
func WithOriginalCSV(path string) FuzzyOption {
	return func(d *FuzzyDeduplicator) { d.originalPath = path }
}

// WithFuzzyLogger sets the logger.
func WithFuzzyLogger(log zerolog.Logger) FuzzyOption {
	return func(d *FuzzyDeduplicator) { d.log = log }
}

// NewFuzzyDeduplicator builds a fuzzy deduplicator over the given key,
// domain and name columns.
func NewFuzzyDeduplicator(keyFields []string, domainField, nameField string, opts ...FuzzyOption) *FuzzyDeduplicator {
	d := &FuzzyDeduplicator{
		keyFields:   keyFields,
		domainField: domainField,
		nameField:   nameField,
		maxDistance: MaxDistance,
		log:         *logging.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FuzzyReport carries the duplicate groups from both phases of a fuzzy
// run: exact key groups, then fuzzy field groups over the key survivors.
type FuzzyReport struct {
	ByKey    *Report `json:"by_key"`
	ByFields *Report `json:"by_fields"`
}

// index is the in-memory state of one fuzzy run.
type index struct {
	// survivors maps composite key to the row kept for that key, with
	// order preserving first encounter. Deleted keys stay in order but
	// leave the map.
	survivors map[string]Row
	order     []string

	// names maps normalized name to fingerprint to the distinct keys
	// carrying that (name, fingerprint) pair.
	names      map[string]map[string][]string
	nameOrder  []string
	printOrder map[string][]string
}

// Deduplicate reads a whole CSV from in, merges duplicates and writes the
// canonical rows to out in first-encounter order.
//
// A row referenced by a cluster but missing from the survivor index is an
// internal invariant violation and aborts the run; silently wrong output
// is worse than no output.
func (d *FuzzyDeduplicator) Deduplicate(in io.Reader, out io.Writer) (*FuzzyReport, error) {
	table, err := ReadTable(in)
	if err != nil {
		return nil, err
	}
	if err := checkFields(table.Headers, append(d.keyFields, d.domainField, d.nameField)); err != nil {
		return nil, err
	}

	idx, byKey := d.buildIndex(table)
	d.clusterFingerprints(idx)
	byFields, err := d.mergeClusters(idx)
	if err != nil {
		return nil, err
	}

	originals, err := d.loadOriginals()
	if err != nil {
		return nil, err
	}

	merged := &Table{Headers: table.Headers}
	for _, key := range idx.order {
		survivor, ok := idx.survivors[key]
		if !ok {
			continue // merged away
		}
		d.restoreAddress(survivor, originals[key])
		if survivor[d.nameField] == "" {
			survivor[d.nameField] = "N/A"
		}
		merged.Rows = append(merged.Rows, survivor)
	}
	if err := merged.Write(out); err != nil {
		return nil, err
	}

	d.log.Debug().
		Int("rows_in", len(table.Rows)).
		Int("rows_out", len(merged.Rows)).
		Int("key_groups", len(byKey.Groups)).
		Int("field_groups", len(byFields.Groups)).
		Msg("fuzzy deduplication complete")

	byKey.Headers = table.Headers
	byFields.Headers = table.Headers
	return &FuzzyReport{ByKey: byKey, ByFields: byFields}, nil
}

// buildIndex merges rows by exact key and files every key under its row's
// normalized name and field fingerprint.
func (d *FuzzyDeduplicator) buildIndex(table *Table) (*index, *Report) {
	idx := &index{
		survivors:  make(map[string]Row),
		names:      make(map[string]map[string][]string),
		printOrder: make(map[string][]string),
	}
	byKey := &Report{}
	groups := make(map[string]*Group)

	for _, row := range table.Rows {
		key := compositeKey(row, d.keyFields)

		survivor, seen := idx.survivors[key]
		if !seen {
			idx.survivors[key] = row
			idx.order = append(idx.order, key)
			groups[key] = &Group{Rows: []Row{row}}
		} else {
			mergeDomain(survivor, d.domainField, row[d.domainField])
			groups[key].Rows = append(groups[key].Rows, row)
		}

		name := NormalizeName(row[d.nameField])
		print := d.fingerprint(table.Headers, row)

		fps, ok := idx.names[name]
		if !ok {
			fps = make(map[string][]string)
			idx.names[name] = fps
			idx.nameOrder = append(idx.nameOrder, name)
		}
		if _, ok := fps[print]; !ok {
			idx.printOrder[name] = append(idx.printOrder[name], print)
		}
		if !containsString(fps[print], key) {
			fps[print] = append(fps[print], key)
		}
	}

	for _, key := range idx.order {
		if group := groups[key]; len(group.Rows) > 1 {
			byKey.Groups = append(byKey.Groups, *group)
		}
	}
	return idx, byKey
}

// fingerprint concatenates every field value except the key, domain and
// name fields, reduced to uppercase alphanumerics. Rows describing the
// same initiative under different keys end up with identical or
// near-identical fingerprints.
func (d *FuzzyDeduplicator) fingerprint(headers []string, row Row) string {
	skip := make(map[string]bool, len(d.keyFields)+2)
	for _, k := range d.keyFields {
		skip[k] = true
	}
	skip[d.domainField] = true
	skip[d.nameField] = true

	var print string
	for _, header := range headers {
		if !skip[header] {
			print += row[header]
		}
	}
	return normalize.Alphanumeric(print)
}

// clusterFingerprints clusters each name's fingerprints by edit distance
// and folds later cluster members' key lists into the first member's.
func (d *FuzzyDeduplicator) clusterFingerprints(idx *index) {
	for _, name := range idx.nameOrder {
		fps := idx.names[name]
		clusters := cluster(idx.printOrder[name], func(a, b string) bool {
			return levenshtein.ComputeDistance(a, b) < d.maxDistance
		})
		for _, members := range clusters {
			first := members[0]
			for _, member := range members[1:] {
				fps[first] = append(fps[first], fps[member]...)
				delete(fps, member)
			}
		}
	}
}

// mergeClusters merges the survivors of every (name, fingerprint) entry
// holding more than one key into the entry's first key.
func (d *FuzzyDeduplicator) mergeClusters(idx *index) (*Report, error) {
	report := &Report{}
	for _, name := range idx.nameOrder {
		for _, print := range idx.printOrder[name] {
			keys, ok := idx.names[name][print]
			if !ok || len(keys) < 2 {
				continue
			}

			first := keys[0]
			survivor, ok := idx.survivors[first]
			if !ok {
				return nil, errors.NewIndexInvariantError(first,
					"cluster survivor missing from index")
			}
			group := Group{Rows: []Row{survivor}}

			for _, dup := range keys[1:] {
				row, ok := idx.survivors[dup]
				if !ok {
					return nil, errors.NewIndexInvariantError(dup,
						"clustered row missing from index")
				}
				mergeDomain(survivor, d.domainField, row[d.domainField])
				delete(idx.survivors, dup)
				group.Rows = append(group.Rows, row)
			}
			report.Groups = append(report.Groups, group)
		}
	}
	return report, nil
}

// loadOriginals indexes the pre-geocoding file by composite key, when one
// was configured.
func (d *FuzzyDeduplicator) loadOriginals() (map[string]Row, error) {
	if d.originalPath == "" {
		return nil, nil
	}
	f, err := os.Open(d.originalPath)
	if err != nil {
		return nil, errors.WrapIO("open", d.originalPath, err)
	}
	defer f.Close()

	table, err := ReadTable(f)
	if err != nil {
		return nil, err
	}
	originals := make(map[string]Row, len(table.Rows))
	for _, row := range table.Rows {
		originals[compositeKey(row, d.keyFields)] = row
	}
	return originals, nil
}

// restoreAddress copies the original address columns back onto a
// survivor. The postcode is only restored when geocoding left it empty.
func (d *FuzzyDeduplicator) restoreAddress(survivor, original Row) {
	if original == nil {
		return
	}
	for _, field := range addressFields {
		survivor[field] = original[field]
	}
	if survivor[postcodeField] == "" {
		survivor[postcodeField] = original[postcodeField]
	}
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
