package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solidata/solidata/pkg/schema"
)

// schemaCmd represents the schema command.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect built-in and external schemas",
	Long: `Schema lists the built-in schema versions, or checks an external
schema declaration.

Without arguments it prints the built-in versions. Use subcommands for
specific operations:
  - show: print the fields of a built-in schema version
  - check: validate a schema YAML file`,
	Example: `  solidata schema
  solidata schema show
  solidata schema check survey.yaml`,
	RunE: runSchemaList,
}

// schemaShowCmd prints the fields of a built-in schema.
var schemaShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Print the fields of a built-in schema version",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchemaShow,
}

// schemaCheckCmd validates an external schema declaration.
var schemaCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a schema YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaCheck,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	schemaCmd.AddCommand(schemaCheckCmd)
}

func runSchemaList(cmd *cobra.Command, _ []string) error {
	for _, s := range schema.Versions {
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%d\t%s\t%d fields\n",
			s.ID(), s.Version(), s.Name(), len(s.Fields()))
	}
	return nil
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	s := schema.Latest
	if len(args) == 1 {
		var version int
		if _, err := fmt.Sscanf(args[0], "%d", &version); err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		s = nil
		for _, candidate := range schema.Versions {
			if candidate.Version() == version {
				s = candidate
				break
			}
		}
		if s == nil {
			return fmt.Errorf("no built-in schema version %d", version)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s v%d — %s\n", s.ID(), s.Version(), s.Name())
	for _, f := range s.Fields() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %s\n", f.ID, f.Header)
	}
	return nil
}

func runSchemaCheck(cmd *cobra.Command, args []string) error {
	s, err := schema.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: schema %s v%d OK, %d fields\n",
		args[0], s.ID(), s.Version(), len(s.Fields()))
	return nil
}
