package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solidata/solidata/pkg/convert"
	"github.com/solidata/solidata/pkg/schema"
)

var (
	addIDsFlagSchema string
	addIDsFlagField  string
	addIDsFlagInput  string
	addIDsFlagOutput string
)

// addIDsCmd represents the add-ids command.
var addIDsCmd = &cobra.Command{
	Use:   "add-ids",
	Short: "Assign UUIDs to rows with an empty identifier",
	Long: `Add-ids copies a CSV in the standard schema, filling the identifier
field of every row that does not already have one with a freshly generated
UUID. Rows with an identifier pass through unchanged.`,
	Example: `  solidata add-ids -i standard.csv -o with-ids.csv
  solidata add-ids --field id -i standard.csv -o with-ids.csv`,
	RunE: runAddIDs,
}

func init() {
	rootCmd.AddCommand(addIDsCmd)

	addIDsCmd.Flags().StringVar(&addIDsFlagSchema, "schema", "", "schema YAML file (default: built-in standard schema)")
	addIDsCmd.Flags().StringVar(&addIDsFlagField, "field", string(schema.FieldIdentifier), "field id to fill")
	addIDsCmd.Flags().StringVarP(&addIDsFlagInput, "input", "i", "", "input CSV file (required)")
	addIDsCmd.Flags().StringVarP(&addIDsFlagOutput, "output", "o", "", "output CSV file (required)")
	_ = addIDsCmd.MarkFlagRequired("input")
	_ = addIDsCmd.MarkFlagRequired("output")
}

func runAddIDs(_ *cobra.Command, _ []string) error {
	s := schema.StandardV1
	if addIDsFlagSchema != "" {
		loaded, err := schema.Load(addIDsFlagSchema)
		if err != nil {
			return fmt.Errorf("loading schema: %w", err)
		}
		s = loaded
	}

	field := schema.FieldID(addIDsFlagField)
	if !s.HasField(field) {
		return fmt.Errorf("schema %s has no field %q", s.ID(), addIDsFlagField)
	}

	return convert.AddIdentifiers(s, field).ConvertFile(addIDsFlagInput, addIDsFlagOutput)
}
