package convert

import (
	"encoding/csv"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidata/solidata/pkg/schema"
)

func surveySchema(t *testing.T) *schema.Schema {
	t.Helper()
	fields := []schema.Field{
		{ID: "id", Header: "Response ID"},
		{ID: "approved", Header: "Approved"},
		{ID: "name", Header: "Name"},
		{ID: "description", Header: "Description"},
		{ID: "activity", Header: "Activity"},
		{ID: "location", Header: "Location"},
		{ID: "address_a", Header: "Address line 1"},
		{ID: "address_b", Header: "Address line 2"},
		{ID: "address_c", Header: "Address line 3"},
		{ID: "address_d", Header: "Town"},
		{ID: "address_e", Header: "Postcode"},
		{ID: "email", Header: "Email"},
		{ID: "phone", Header: "Phone"},
		{ID: "website", Header: "Website"},
		{ID: "facebook", Header: "Facebook"},
		{ID: "twitter", Header: "Twitter"},
	}
	for ix := 1; ix <= 12; ix++ {
		id := fmt.Sprintf("structure_SQ%03d", ix)
		fields = append(fields, schema.Field{ID: schema.FieldID(id), Header: id})
	}
	for ix := 2; ix <= 13; ix++ {
		id := fmt.Sprintf("secondaryActivities_SQ%03d", ix)
		fields = append(fields, schema.Field{ID: schema.FieldID(id), Header: id})
	}
	s, err := schema.New("survey", "Survey export", fields)
	require.NoError(t, err)
	return s
}

// surveyRow renders one semicolon-delimited survey row from overrides,
// defaulting every unnamed cell to empty.
func surveyRow(t *testing.T, s *schema.Schema, values map[schema.FieldID]string) string {
	t.Helper()
	cells := make([]string, len(s.Fields()))
	for ix, field := range s.Fields() {
		cells[ix] = values[field.ID]
	}
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	require.NoError(t, w.Write(cells))
	w.Flush()
	require.NoError(t, w.Error())
	return strings.TrimRight(buf.String(), "\n")
}

func TestSurveyConverter(t *testing.T) {
	s := surveySchema(t)
	header := strings.Join(s.FieldHeaders(), ";")

	row := surveyRow(t, s, map[schema.FieldID]string{
		"id":                        "42",
		"approved":                  "Yes",
		"name":                      "Acme Coop",
		"description":               "A co-op.",
		"activity":                  "SQ006",
		"location":                  "51.75207;-1.25769",
		"address_a":                 "1 High St",
		"address_c":                 "Mill Yard",
		"address_d":                 "Oxford",
		"address_e":                 "ox1 1aa",
		"email":                     "hello@acme.coop",
		"phone":                     "+44 1865 000000",
		"website":                   "www.acme.coop",
		"facebook":                  "https://www.facebook.com/AcmeCoop",
		"twitter":                   "@AcmeCoop",
		"structure_SQ006":           "Y",
		"structure_SQ011":           "Y",
		"secondaryActivities_SQ007": "Y",
	})

	in := strings.NewReader(header + "\n" + row + "\n")
	var out strings.Builder
	require.NoError(t, NewSurveyConverter(s).Convert(in, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(schema.StandardV1.FieldHeaders(), ","), lines[0])

	rec := parseStandardRow(t, lines[1])
	assert.Equal(t, "42", rec.Value(schema.FieldIdentifier))
	assert.Equal(t, "Acme Coop", rec.Value(schema.FieldName))
	assert.Equal(t, "Workers co-operative;Community Interest Company (CIC)",
		rec.Value(schema.FieldStructure))
	assert.Equal(t, "Food", rec.Value(schema.FieldPrimaryActivity))
	assert.Equal(t, "Food", rec.Value(schema.FieldActivities))
	assert.Equal(t, "1 High St;Mill Yard", rec.Value(schema.FieldStreetAddress))
	assert.Equal(t, "Oxford", rec.Value(schema.FieldLocality))
	assert.Equal(t, "OX1 1AA", rec.Value(schema.FieldPostcode))
	assert.Equal(t, "http://www.acme.coop", rec.Value(schema.FieldHomepage))
	assert.Equal(t, "01865000000", rec.Value(schema.FieldPhone))
	assert.Equal(t, "acmecoop", rec.Value(schema.FieldTwitter))
	assert.Equal(t, "acmecoop", rec.Value(schema.FieldFacebook))
	assert.Equal(t, "51.75207", rec.Value(schema.FieldLatitude))
	assert.Equal(t, "-1.25769", rec.Value(schema.FieldLongitude))
}

func TestSurveyConverterDropsUnapproved(t *testing.T) {
	s := surveySchema(t)
	header := strings.Join(s.FieldHeaders(), ";")
	row := surveyRow(t, s, map[schema.FieldID]string{
		"id":       "1",
		"approved": "No",
		"name":     "Rejected Org",
	})

	in := strings.NewReader(header + "\n" + row + "\n")
	var out strings.Builder
	require.NoError(t, NewSurveyConverter(s).Convert(in, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestSurveyConverterMissingField(t *testing.T) {
	s, err := schema.New("survey", "", []schema.Field{
		{ID: "id", Header: "Response ID"},
		{ID: "name", Header: "Name"},
	})
	require.NoError(t, err)

	var out strings.Builder
	err = NewSurveyConverter(s).Convert(strings.NewReader("Response ID;Name\n"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "approved")
}

// parseStandardRow parses one already-written output line back into a
// record for assertions.
func parseStandardRow(t *testing.T, line string) schema.Record {
	t.Helper()
	cells, err := csv.NewReader(strings.NewReader(line)).Read()
	require.NoError(t, err)

	fieldMap, err := schema.StandardV1.ValidateHeaders(schema.StandardV1.FieldHeaders())
	require.NoError(t, err)
	rec, err := schema.StandardV1.IDHash(cells, fieldMap)
	require.NoError(t, err)
	return rec
}
