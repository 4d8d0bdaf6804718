package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solidata/solidata/pkg/convert"
	"github.com/solidata/solidata/pkg/schema"
)

var (
	convertFlagSchema string
	convertFlagInput  string
	convertFlagOutput string
	convertFlagComma  string
	convertFlagAddIDs bool
)

// convertCmd represents the convert command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a survey CSV export to the standard schema",
	Long: `Convert reads a raw survey export, validates its headers against the
declared source schema, and rewrites every approved row into the standard
initiative schema: vocabulary lookups for activities and organisational
structures, URL/phone/handle normalization, and lat/long extraction.

The source schema is a YAML file declaring the export's field ids and
header text. Rows not marked as approved are dropped.`,
	Example: `  solidata convert --schema survey.yaml -i export.csv -o standard.csv
  solidata convert --schema survey.yaml -i export.csv -o standard.csv --add-ids
  solidata convert --schema survey.yaml --comma "," -i export.csv -o standard.csv`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFlagSchema, "schema", "", "source schema YAML file (required)")
	convertCmd.Flags().StringVarP(&convertFlagInput, "input", "i", "", "input CSV file (required)")
	convertCmd.Flags().StringVarP(&convertFlagOutput, "output", "o", "", "output CSV file (required)")
	convertCmd.Flags().StringVar(&convertFlagComma, "comma", ";", "input field separator")
	convertCmd.Flags().BoolVar(&convertFlagAddIDs, "add-ids", false, "assign UUIDs to rows without an identifier")
	_ = convertCmd.MarkFlagRequired("schema")
	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}

func runConvert(_ *cobra.Command, _ []string) error {
	from, err := schema.Load(convertFlagSchema)
	if err != nil {
		return fmt.Errorf("loading source schema: %w", err)
	}

	comma, err := singleRune(convertFlagComma)
	if err != nil {
		return fmt.Errorf("invalid --comma: %w", err)
	}

	survey := convert.NewSurveyConverter(from, convert.WithInputComma(comma))
	if !convertFlagAddIDs {
		return survey.ConvertFile(convertFlagInput, convertFlagOutput)
	}

	pipeline := convert.NewPipeline(
		survey,
		convert.AddIdentifiers(schema.StandardV1, schema.FieldIdentifier),
	)
	return pipeline.ConvertFile(convertFlagInput, convertFlagOutput)
}

// singleRune parses a one-character flag value.
func singleRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return runes[0], nil
}
