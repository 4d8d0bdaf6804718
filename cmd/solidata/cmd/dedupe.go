package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solidata/solidata/pkg/dedupe"
	"github.com/solidata/solidata/pkg/schema"
)

var (
	dedupeFlagInput       string
	dedupeFlagOutput      string
	dedupeFlagKeys        []string
	dedupeFlagDomain      string
	dedupeFlagName        string
	dedupeFlagMaxDistance int
	dedupeFlagOriginalCSV string
	dedupeFlagReport      string
)

// dedupeCmd represents the dedupe command.
var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Merge and remove duplicate rows",
	Long: `Dedupe merges rows describing the same initiative. Rows sharing the
composite key are merged first; the survivors are then clustered by
normalized name and the edit distance between fingerprints of their
remaining fields, catching duplicates that were assigned different keys.

In both phases the first row of a group survives and the domain values of
the rest are folded into its domain field as a sub-field list.

With --original-csv, survivors take their address columns back from
the named pre-geocoding file, keeping geocoder normalization out of the
canonical output. With --report, the duplicate groups of both phases are
written as JSON for the report generator.`,
	Example: `  solidata dedupe -i standard.csv -o merged.csv
  solidata dedupe -i geocoded.csv -o merged.csv --original-csv standard.csv
  solidata dedupe -i standard.csv -o merged.csv --report duplicates.json`,
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	std := schema.StandardV1
	dedupeCmd.Flags().StringVarP(&dedupeFlagInput, "input", "i", "", "input CSV file (required)")
	dedupeCmd.Flags().StringVarP(&dedupeFlagOutput, "output", "o", "", "output CSV file (required)")
	dedupeCmd.Flags().StringSliceVar(&dedupeFlagKeys, "key", []string{std.HeaderOf(schema.FieldIdentifier)}, "composite key headers")
	dedupeCmd.Flags().StringVar(&dedupeFlagDomain, "domain", std.HeaderOf(schema.FieldHomepage), "multi-valued domain header")
	dedupeCmd.Flags().StringVar(&dedupeFlagName, "name", std.HeaderOf(schema.FieldName), "initiative name header")
	dedupeCmd.Flags().IntVar(&dedupeFlagMaxDistance, "max-distance", dedupe.MaxDistance, "edit-distance bound (exclusive) for fuzzy matching")
	dedupeCmd.Flags().StringVar(&dedupeFlagOriginalCSV, "original-csv", "", "pre-geocoding CSV to restore survivor addresses from")
	dedupeCmd.Flags().StringVar(&dedupeFlagReport, "report", "", "write duplicate groups as JSON to this file")
	_ = dedupeCmd.MarkFlagRequired("input")
	_ = dedupeCmd.MarkFlagRequired("output")
}

func runDedupe(_ *cobra.Command, _ []string) error {
	opts := []dedupe.FuzzyOption{dedupe.WithMaxDistance(dedupeFlagMaxDistance)}
	if dedupeFlagOriginalCSV != "" {
		opts = append(opts, dedupe.WithOriginalCSV(dedupeFlagOriginalCSV))
	}
	d := dedupe.NewFuzzyDeduplicator(dedupeFlagKeys, dedupeFlagDomain, dedupeFlagName, opts...)

	var report *dedupe.FuzzyReport
	err := withFiles(dedupeFlagInput, dedupeFlagOutput, func(in *os.File, out *os.File) error {
		var err error
		report, err = d.Deduplicate(in, out)
		return err
	})
	if err != nil {
		return err
	}
	return writeReport(dedupeFlagReport, report)
}

// withFiles opens the input and creates the output, runs fn over both, and
// closes them. The output close error is reported so short writes are not
// lost.
func withFiles(inPath, outPath string, fn func(in, out *os.File) error) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := fn(in, out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

// writeReport serializes a duplicate-group report as indented JSON. A
// missing path disables reporting.
func writeReport(path string, report any) error {
	if path == "" {
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
