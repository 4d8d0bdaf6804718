// Package dedupe merges and removes duplicate rows from canonical
// initiative CSVs. Three strategies are provided: exact composite-key
// grouping (KeyDeduplicator), fuzzy field-fingerprint clustering by edit
// distance (FuzzyDeduplicator), and coordinate-proximity clustering
// (GeoDeduplicator). All three share the same merge rule: the first row of
// a duplicate group survives, and the domain field values of the rest are
// folded into it as a sub-field list.
//
// The deduplicators need random access across the whole dataset, so they
// read their input fully into memory. Dataset sizes are low thousands of
// rows.
package dedupe

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/solidata/solidata/pkg/errors"
	"github.com/solidata/solidata/pkg/schema"
)

// Row is one canonical CSV row keyed by header name. Rows are owned by the
// deduplicator holding them; once merged into a survivor they are
// discarded.
type Row map[string]string

// Table is a fully loaded CSV: ordered headers plus rows in file order.
type Table struct {
	Headers []string
	Rows    []Row
}

// ReadTable loads a whole CSV, treating the first row as headers.
func ReadTable(in io.Reader) (*Table, error) {
	csvIn := csv.NewReader(in)
	csvIn.FieldsPerRecord = -1

	headers, err := csvIn.Read()
	if err == io.EOF {
		return nil, errors.NewRowShapeError("", "no headers in input stream")
	}
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	table := &Table{Headers: headers}
	for {
		cells, err := csvIn.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", "", err)
		}
		row := make(Row, len(headers))
		for ix, header := range headers {
			if ix < len(cells) {
				row[header] = cells[ix]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Write emits the table as CSV, headers first.
func (t *Table) Write(out io.Writer) error {
	csvOut := csv.NewWriter(out)
	if err := csvOut.Write(t.Headers); err != nil {
		return errors.WrapIO("write", "", err)
	}
	for _, row := range t.Rows {
		if err := csvOut.Write(t.rowValues(row)); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	csvOut.Flush()
	if err := csvOut.Error(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// writeRowsOnly emits the rows without a header line.
func (t *Table) writeRowsOnly(out io.Writer) error {
	csvOut := csv.NewWriter(out)
	for _, row := range t.Rows {
		if err := csvOut.Write(t.rowValues(row)); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}
	csvOut.Flush()
	if err := csvOut.Error(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

// checkFields reports an error naming every wanted header absent from
// headers.
func checkFields(headers, wanted []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, w := range wanted {
		if !present[w] {
			missing = append(missing, w)
		}
	}
	if len(missing) > 0 {
		return &errors.MissingFieldError{IDs: missing}
	}
	return nil
}

func (t *Table) rowValues(row Row) []string {
	values := make([]string, len(t.Headers))
	for ix, header := range t.Headers {
		values[ix] = row[header]
	}
	return values
}

// Group is one set of rows judged equivalent by a deduplication criterion.
// The first row in insertion order is the survivor; the rest were merged
// into it and dropped from the canonical output. Groups of size 1 are not
// duplicates and are not reported.
type Group struct {
	Rows []Row `json:"rows"`
}

// Survivor returns the retained row for the group.
func (g Group) Survivor() Row { return g.Rows[0] }

// Report lists the duplicate groups found by one deduplication pass,
// together with the header order needed to render the rows. It is handed
// to an external report generator; this package does not format it.
type Report struct {
	Headers []string `json:"headers"`
	Groups  []Group  `json:"groups"`
}

// mergeDomain folds a domain value into a survivor's domain field as a
// sub-field list. The append is skipped when the survivor's field already
// contains the value as a substring, so merging the same value twice is
// idempotent. Substring containment is an approximation of set membership:
// a domain that is a prefix of another will be skipped even though it is
// distinct.
func mergeDomain(survivor Row, domainField, domain string) {
	existing := survivor[domainField]
	if strings.Contains(existing, domain) {
		return
	}
	survivor[domainField] = existing + schema.SubFieldSeparator + domain
}

// compositeKey renders the tuple of key-field values as one map key,
// joined on a separator not expected in cell data.
func compositeKey(row Row, keyFields []string) string {
	parts := make([]string, len(keyFields))
	for ix, field := range keyFields {
		parts[ix] = row[field]
	}
	return strings.Join(parts, "\x1f")
}
