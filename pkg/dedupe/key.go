package dedupe

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/solidata/solidata/pkg/logging"
)

// KeyDeduplicator merges rows sharing an exact composite key. Rows arrive
// with the same external identifier when one organization registered
// several domains; the first row per key survives and collects the
// others' domain values.
type KeyDeduplicator struct {
	keyFields   []string
	domainField string
	nameField   string
	log         zerolog.Logger
}

// NewKeyDeduplicator builds a key-based deduplicator. keyFields name the
// header columns whose tuple of values forms the unique key; domainField
// is the multi-valued column folded across duplicates; nameField is the
// display-name column defaulted when empty.
func NewKeyDeduplicator(keyFields []string, domainField, nameField string) *KeyDeduplicator {
	return &KeyDeduplicator{
		keyFields:   keyFields,
		domainField: domainField,
		nameField:   nameField,
		log:         *logging.Default(),
	}
}

// Deduplicate reads a whole CSV from in, merges rows sharing a key and
// writes the survivors to out in first-encounter order. The returned
// report lists every key group with more than one member.
func (d *KeyDeduplicator) Deduplicate(in io.Reader, out io.Writer) (*Report, error) {
	table, err := ReadTable(in)
	if err != nil {
		return nil, err
	}
	if err := checkFields(table.Headers, append(d.keyFields, d.domainField, d.nameField)); err != nil {
		return nil, err
	}

	merged, report := d.mergeTable(table)
	if err := merged.Write(out); err != nil {
		return nil, err
	}
	return report, nil
}

func (d *KeyDeduplicator) mergeTable(table *Table) (*Table, *Report) {
	survivors := make(map[string]Row)
	groups := make(map[string]*Group)
	var order []string

	for _, row := range table.Rows {
		key := compositeKey(row, d.keyFields)
		survivor, seen := survivors[key]
		if !seen {
			survivors[key] = row
			groups[key] = &Group{Rows: []Row{row}}
			order = append(order, key)
			continue
		}
		mergeDomain(survivor, d.domainField, row[d.domainField])
		groups[key].Rows = append(groups[key].Rows, row)
	}

	merged := &Table{Headers: table.Headers}
	report := &Report{Headers: table.Headers}
	dupRows := 0
	for _, key := range order {
		survivor := survivors[key]
		// A missing display name must not make a duplicate silently
		// disappear downstream.
		if survivor[d.nameField] == "" {
			survivor[d.nameField] = "N/A"
		}
		merged.Rows = append(merged.Rows, survivor)

		group := groups[key]
		if len(group.Rows) > 1 {
			report.Groups = append(report.Groups, *group)
			dupRows += len(group.Rows) - 1
		}
	}

	d.log.Debug().
		Int("rows_in", len(table.Rows)).
		Int("rows_out", len(merged.Rows)).
		Int("merged", dupRows).
		Msg("key deduplication complete")
	return merged, report
}

// DropDuplicates copies in to out, dropping every row whose key tuple was
// already seen. Dropped rows are written to errOut without a header row,
// for operator inspection. Unlike the merging deduplicators nothing is
// folded; later rows simply lose.
func DropDuplicates(in io.Reader, out, errOut io.Writer, keyFields []string) error {
	table, err := ReadTable(in)
	if err != nil {
		return err
	}

	kept := &Table{Headers: table.Headers}
	used := make(map[string]bool)
	var dropped []Row
	for _, row := range table.Rows {
		key := compositeKey(row, keyFields)
		if used[key] {
			dropped = append(dropped, row)
			continue
		}
		used[key] = true
		kept.Rows = append(kept.Rows, row)
	}

	if err := kept.Write(out); err != nil {
		return err
	}
	return writeHeaderless(errOut, kept.Headers, dropped)
}

// writeHeaderless emits rows without a header line.
func writeHeaderless(out io.Writer, headers []string, rows []Row) error {
	t := &Table{Headers: headers, Rows: rows}
	return t.writeRowsOnly(out)
}
