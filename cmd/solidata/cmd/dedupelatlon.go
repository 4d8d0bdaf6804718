package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/solidata/solidata/pkg/dedupe"
	"github.com/solidata/solidata/pkg/schema"
)

var (
	latLonFlagInput  string
	latLonFlagOutput string
	latLonFlagDomain string
	latLonFlagName   string
	latLonFlagLat    string
	latLonFlagLon    string
	latLonFlagDigits int
	latLonFlagReport string
)

// dedupeLatLonCmd represents the dedupe-latlon command.
var dedupeLatLonCmd = &cobra.Command{
	Use:   "dedupe-latlon",
	Short: "Merge rows sharing a name and a location",
	Long: `Dedupe-latlon clusters rows whose normalized names match and whose
latitude and longitude coincide once truncated to the leading significant
digits. Domain values of merged rows are folded into the survivor, the
same rule the dedupe command applies.

This pass catches the same initiative submitted through different sources,
where no shared key exists but the geocoder resolved both to one spot.`,
	Example: `  solidata dedupe-latlon -i geocoded.csv -o merged.csv
  solidata dedupe-latlon -i geocoded.csv -o merged.csv --digits 4 --report latlon-dups.json`,
	RunE: runDedupeLatLon,
}

func init() {
	rootCmd.AddCommand(dedupeLatLonCmd)

	std := schema.StandardV1
	dedupeLatLonCmd.Flags().StringVarP(&latLonFlagInput, "input", "i", "", "input CSV file (required)")
	dedupeLatLonCmd.Flags().StringVarP(&latLonFlagOutput, "output", "o", "", "output CSV file (required)")
	dedupeLatLonCmd.Flags().StringVar(&latLonFlagDomain, "domain", std.HeaderOf(schema.FieldHomepage), "multi-valued domain header")
	dedupeLatLonCmd.Flags().StringVar(&latLonFlagName, "name", std.HeaderOf(schema.FieldName), "initiative name header")
	dedupeLatLonCmd.Flags().StringVar(&latLonFlagLat, "lat", std.HeaderOf(schema.FieldGeoContainerLat), "latitude header")
	dedupeLatLonCmd.Flags().StringVar(&latLonFlagLon, "lon", std.HeaderOf(schema.FieldGeoContainerLon), "longitude header")
	dedupeLatLonCmd.Flags().IntVar(&latLonFlagDigits, "digits", dedupe.GeoDigits, "significant digits kept when comparing coordinates")
	dedupeLatLonCmd.Flags().StringVar(&latLonFlagReport, "report", "", "write duplicate groups as JSON to this file")
	_ = dedupeLatLonCmd.MarkFlagRequired("input")
	_ = dedupeLatLonCmd.MarkFlagRequired("output")
}

func runDedupeLatLon(_ *cobra.Command, _ []string) error {
	d := dedupe.NewGeoDeduplicator(latLonFlagName, latLonFlagDomain, latLonFlagLat, latLonFlagLon,
		dedupe.WithGeoDigits(latLonFlagDigits))

	var report *dedupe.Report
	err := withFiles(latLonFlagInput, latLonFlagOutput, func(in *os.File, out *os.File) error {
		var err error
		report, err = d.Deduplicate(in, out)
		return err
	})
	if err != nil {
		return err
	}
	return writeReport(latLonFlagReport, report)
}
