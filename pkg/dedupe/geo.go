package dedupe

import (
	"io"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/solidata/solidata/pkg/logging"
)

// GeoDigits is the default number of significant digits kept when
// comparing coordinates. Five digits of latitude is roughly street-level.
const GeoDigits = 5

// GeoDeduplicator clusters rows sharing a normalized name when their
// coordinates coincide after truncation. A cheaper, coordinate-only pass
// for already-geocoded data, independent of the fuzzy text pass.
type GeoDeduplicator struct {
	nameField   string
	domainField string
	latField    string
	lonField    string
	digits      int
	log         zerolog.Logger
}

// GeoOption configures a GeoDeduplicator.
type GeoOption func(*GeoDeduplicator)

// WithGeoDigits overrides the significant digits kept for comparison.
func WithGeoDigits(digits int) GeoOption {
	return func(d *GeoDeduplicator) { d.digits = digits }
}

// WithGeoLogger sets the logger.
func WithGeoLogger(log zerolog.Logger) GeoOption {
	return func(d *GeoDeduplicator) { d.log = log }
}

// NewGeoDeduplicator builds a geo-proximity deduplicator over the given
// name, domain and coordinate columns.
func NewGeoDeduplicator(nameField, domainField, latField, lonField string, opts ...GeoOption) *GeoDeduplicator {
	d := &GeoDeduplicator{
		nameField:   nameField,
		domainField: domainField,
		latField:    latField,
		lonField:    lonField,
		digits:      GeoDigits,
		log:         *logging.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deduplicate reads a whole CSV from in, merges same-name rows whose
// truncated coordinates coincide and writes the survivors to out. Rows
// are emitted grouped by first encounter of each normalized name.
func (d *GeoDeduplicator) Deduplicate(in io.Reader, out io.Writer) (*Report, error) {
	table, err := ReadTable(in)
	if err != nil {
		return nil, err
	}
	if err := checkFields(table.Headers,
		[]string{d.nameField, d.domainField, d.latField, d.lonField}); err != nil {
		return nil, err
	}

	names := make(map[string][]Row)
	var nameOrder []string
	for _, row := range table.Rows {
		name := NormalizeName(row[d.nameField])
		if _, ok := names[name]; !ok {
			nameOrder = append(nameOrder, name)
		}
		names[name] = append(names[name], row)
	}

	merged := &Table{Headers: table.Headers}
	report := &Report{Headers: table.Headers}
	for _, name := range nameOrder {
		clusters := cluster(names[name], d.sameLocation)
		for _, members := range clusters {
			survivor := members[0]
			for _, row := range members[1:] {
				mergeDomain(survivor, d.domainField, row[d.domainField])
			}
			if len(members) > 1 {
				report.Groups = append(report.Groups, Group{Rows: members})
			}
			merged.Rows = append(merged.Rows, survivor)
		}
	}

	if err := merged.Write(out); err != nil {
		return nil, err
	}

	d.log.Debug().
		Int("rows_in", len(table.Rows)).
		Int("rows_out", len(merged.Rows)).
		Int("groups", len(report.Groups)).
		Msg("geo deduplication complete")
	return report, nil
}

// sameLocation reports whether two rows' coordinates agree in both axes
// after truncation.
func (d *GeoDeduplicator) sameLocation(a, b Row) bool {
	return truncateCoord(a[d.latField], d.digits) == truncateCoord(b[d.latField], d.digits) &&
		truncateCoord(a[d.lonField], d.digits) == truncateCoord(b[d.lonField], d.digits)
}

// truncateCoord keeps the leading significant digits of a coordinate,
// truncating toward zero: with 5 digits, 51.75207 and 51.75209 both
// become 51.752. Unparseable values truncate to 0, so rows without
// coordinates cluster with each other, never with located rows.
func truncateCoord(val string, digits int) float64 {
	v, err := strconv.ParseFloat(val, 64)
	if err != nil || v == 0 {
		return 0
	}
	exp := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits-1)-exp)
	return math.Trunc(v*scale) / scale
}
