package geocode

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/solidata/solidata/pkg/errors"
	"github.com/solidata/solidata/pkg/logging"
	"github.com/solidata/solidata/pkg/schema"
)

// addressResultFields maps the standard address columns to the result
// fields a geocoder returns for them, in search-key order.
var addressResultFields = []struct {
	field  schema.FieldID
	result string
}{
	{schema.FieldStreetAddress, ResultStreet},
	{schema.FieldLocality, ResultCity},
	{schema.FieldRegion, ResultState},
	{schema.FieldPostcode, ResultPostcode},
	{schema.FieldCountryName, ResultCountry},
}

// containerResultFields maps the geo-container columns to result fields.
var containerResultFields = []struct {
	field  schema.FieldID
	result string
}{
	{schema.FieldGeoContainer, ResultGeoURI},
	{schema.FieldGeoContainerLat, ResultLat},
	{schema.FieldGeoContainerLon, ResultLon},
}

// Annotator streams a standard-schema CSV through a geocoder, filling the
// geo-container columns of every row whose address resolves. Rows that do
// not resolve pass through unchanged.
type Annotator struct {
	geocoder       Geocoder
	replaceAddress bool
	log            zerolog.Logger
}

// AnnotatorOption configures an Annotator.
type AnnotatorOption func(*Annotator)

// WithReplaceAddress also rewrites the address columns with the
// geocoder's standardized forms, not just the geo-container columns.
func WithReplaceAddress() AnnotatorOption {
	return func(a *Annotator) { a.replaceAddress = true }
}

// WithAnnotatorLogger sets the logger.
func WithAnnotatorLogger(log zerolog.Logger) AnnotatorOption {
	return func(a *Annotator) { a.log = log }
}

// NewAnnotator builds an Annotator over a geocoder. Wrap the geocoder in
// a CachedGeocoder to avoid re-querying addresses across runs.
func NewAnnotator(geocoder Geocoder, opts ...AnnotatorOption) *Annotator {
	a := &Annotator{geocoder: geocoder, log: *logging.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Annotate streams standard-schema CSV from in to out, one row at a time.
// A lookup failure aborts the run; rows already written stay written.
func (a *Annotator) Annotate(ctx context.Context, in io.Reader, out io.Writer) error {
	std := schema.StandardV1

	csvIn := csv.NewReader(in)
	csvIn.FieldsPerRecord = -1
	csvOut := csv.NewWriter(out)

	headers, err := csvIn.Read()
	if err == io.EOF {
		return errors.NewRowShapeError(std.ID(), "no headers in input stream")
	}
	if err != nil {
		return errors.WrapParse("csv", "", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}

	fieldMap, err := std.ValidateHeaders(headers)
	if err != nil {
		return err
	}
	if err := csvOut.Write(std.FieldHeaders()); err != nil {
		return errors.WrapIO("write", "", err)
	}

	resolved := 0
	rows := 0
	for {
		row, err := csvIn.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.WrapParse("csv", "", err)
		}
		rows++

		rec, err := std.IDHash(row, fieldMap)
		if err != nil {
			return err
		}

		result, err := a.resolve(ctx, rec)
		if err != nil {
			return err
		}
		if len(result) > 0 {
			a.apply(rec, result)
			resolved++
		}

		outRow, err := std.Row(rec)
		if err != nil {
			return err
		}
		if err := csvOut.Write(outRow); err != nil {
			return errors.WrapIO("write", "", err)
		}
	}

	csvOut.Flush()
	if err := csvOut.Error(); err != nil {
		return errors.WrapIO("write", "", err)
	}

	a.log.Info().
		Int("rows", rows).
		Int("resolved", resolved).
		Msg("geocoding pass complete")
	return nil
}

// resolve builds the row's search key and looks it up.
func (a *Annotator) resolve(ctx context.Context, rec schema.Record) (map[string]string, error) {
	parts := make([]string, 0, len(addressResultFields))
	for _, m := range addressResultFields {
		parts = append(parts, rec.Value(m.field))
	}
	searchKey := BuildSearchKey(parts...)
	if searchKey == "" {
		return nil, nil
	}
	return a.geocoder.Lookup(ctx, searchKey, rec.Value(schema.FieldCountryName))
}

// apply copies a geocoder result onto a record.
func (a *Annotator) apply(rec schema.Record, result map[string]string) {
	for _, m := range containerResultFields {
		rec.Set(m.field, result[m.result])
	}
	if rec.Value(schema.FieldGeoContainer) == "" {
		rec.Set(schema.FieldGeoContainer,
			MakeGeoURI(result[ResultLat], result[ResultLon]))
	}
	if a.replaceAddress {
		for _, m := range addressResultFields {
			rec.Set(m.field, result[m.result])
		}
	}
}

// MakeGeoURI renders a map link for a coordinate pair, or "" when either
// coordinate is missing.
func MakeGeoURI(lat, lon string) string {
	if lat == "" || lon == "" {
		return ""
	}
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%s&mlon=%s", lat, lon)
}
