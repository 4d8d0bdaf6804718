package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidata/solidata/pkg/errors"
)

func testSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := New("schema1", "Schema 1", []Field{
		{ID: "apples", Header: "Apples", Desc: "A fruit",
			Comment: "Apples grow on trees.\nThey are sometimes green.\n"},
		{ID: "brussels_sprouts", Header: "Brussels Sprouts"},
		{ID: "carrots", Header: "Carrots"},
	})
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := testSchema(t)

	assert.Equal(t, "schema1", s.ID())
	assert.Equal(t, "Schema 1", s.Name())
	require.Len(t, s.Fields(), 3)
	assert.Equal(t, FieldID("apples"), s.Fields()[0].ID)
	assert.Equal(t, "Brussels Sprouts", s.Fields()[1].Header)
	assert.Equal(t, "A fruit", s.Fields()[0].Desc)
	assert.Empty(t, s.Fields()[1].Desc)

	// Indexes are assigned in declaration order.
	for ix, field := range s.Fields() {
		assert.Equal(t, ix, field.Index)
	}

	assert.Equal(t, []FieldID{"apples", "brussels_sprouts", "carrots"}, s.FieldIDs())
	assert.Equal(t, []string{"Apples", "Brussels Sprouts", "Carrots"}, s.FieldHeaders())
	assert.True(t, s.HasField("carrots"))
	assert.False(t, s.HasField("cucumbers"))
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		fields []Field
	}{
		{
			name: "empty schema id",
			id:   "",
			fields: []Field{
				{ID: "apples", Header: "Apples"},
			},
		},
		{
			name:   "no fields",
			id:     "schema1",
			fields: nil,
		},
		{
			name: "empty field id",
			id:   "schema1",
			fields: []Field{
				{ID: "", Header: "Apples"},
			},
		},
		{
			name: "empty header",
			id:   "schema1",
			fields: []Field{
				{ID: "apples", Header: ""},
			},
		},
		{
			name: "duplicate field id",
			id:   "schema1",
			fields: []Field{
				{ID: "apples", Header: "Apples"},
				{ID: "apples", Header: "Carrots"},
			},
		},
		{
			name: "duplicate header",
			id:   "schema1",
			fields: []Field{
				{ID: "apples", Header: "Apples"},
				{ID: "carrots", Header: "Apples"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, "", tt.fields)
			require.Error(t, err)
			assert.True(t, errors.IsSchemaError(err))
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	s := testSchema(t)

	fieldMap, err := s.ValidateHeaders([]string{"Apples", "Brussels Sprouts", "Carrots"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, fieldMap)

	fieldMap, err = s.ValidateHeaders([]string{"Brussels Sprouts", "Carrots", "Apples"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, fieldMap)

	fieldMap, err = s.ValidateHeaders([]string{"Apples", "Carrots", "Brussels Sprouts"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, fieldMap)

	// Extra headers get ignored.
	fieldMap, err = s.ValidateHeaders([]string{"Apples", "Carrots", "Brussels Sprouts", "Cucumbers"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, fieldMap)
}

func TestValidateHeadersInvalid(t *testing.T) {
	s := testSchema(t)

	// Duplicate headers are ambiguous.
	_, err := s.ValidateHeaders([]string{"Apples", "Carrots", "Brussels Sprouts", "Apples"})
	require.Error(t, err)
	assert.True(t, errors.IsHeaderError(err))
	assert.Contains(t, err.Error(), `"Apples" is duplicated`)

	// Missing headers are collected, not reported one at a time.
	_, err = s.ValidateHeaders([]string{"Apples"})
	require.Error(t, err)
	assert.True(t, errors.IsHeaderError(err))
	assert.Contains(t, err.Error(), `"Brussels Sprouts" is missing`)
	assert.Contains(t, err.Error(), `"Carrots" is missing`)
}

func TestIDHash(t *testing.T) {
	s := testSchema(t)

	rec, err := s.IDHash([]string{"a", "b", "c"}, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, Record{"apples": "a", "brussels_sprouts": "b", "carrots": "c"}, rec)

	rec, err = s.IDHash([]string{"a", "b", "c"}, []int{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, Record{"apples": "c", "brussels_sprouts": "a", "carrots": "b"}, rec)
}

func TestIDHashInvalid(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		name     string
		row      []string
		fieldMap []int
		want     string
	}{
		{
			name:     "short row",
			row:      []string{"a", "b"},
			fieldMap: []int{0, 1, 2},
			want:     "row must have 3 elements",
		},
		{
			name:     "short field map",
			row:      []string{"a", "b", "c"},
			fieldMap: []int{0, 1},
			want:     "field map must have 3 elements",
		},
		{
			name:     "index out of range",
			row:      []string{"a", "b", "c"},
			fieldMap: []int{2, 0, 3},
			want:     "invalid field index 3",
		},
		{
			name:     "negative index",
			row:      []string{"a", "b", "c"},
			fieldMap: []int{2, 0, -1},
			want:     "invalid field index -1",
		},
		{
			name:     "duplicate index",
			row:      []string{"a", "b", "c"},
			fieldMap: []int{2, 2, 0},
			want:     "duplicate field index 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.IDHash(tt.row, tt.fieldMap)
			require.Error(t, err)
			assert.True(t, errors.IsRowShapeError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRow(t *testing.T) {
	s := testSchema(t)

	row, err := s.Row(Record{"apples": "a", "brussels_sprouts": "b", "carrots": "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, row)

	// Values follow field order, not record contents.
	row, err = s.Row(Record{"carrots": "a", "apples": "b", "brussels_sprouts": "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, row)
}

func TestRowInvalid(t *testing.T) {
	s := testSchema(t)

	// Unknown keys are errors.
	_, err := s.Row(Record{
		"apples":           "b",
		"brussels_sprouts": "c",
		"carrots":          "a",
		"cucumbers":        "a",
	})
	require.Error(t, err)
	var unknownErr *errors.UnknownFieldError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"cucumbers"}, unknownErr.Keys)

	// All absent fields are reported together.
	_, err = s.Row(Record{"apples": "a"})
	require.Error(t, err)
	var missingErr *errors.MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"brussels_sprouts", "carrots"}, missingErr.IDs)
}

func TestIDHashRowRoundTrip(t *testing.T) {
	s := testSchema(t)

	headers := []string{"Carrots", "Apples", "Brussels Sprouts"}
	fieldMap, err := s.ValidateHeaders(headers)
	require.NoError(t, err)

	rec, err := s.IDHash([]string{"c", "a", "b"}, fieldMap)
	require.NoError(t, err)

	row, err := s.Row(rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, row)
}

func TestStandardSchema(t *testing.T) {
	require.Len(t, StandardV1.Fields(), 22)
	assert.Equal(t, "sse_initiatives", StandardV1.ID())
	assert.Equal(t, 1, StandardV1.Version())
	assert.Same(t, StandardV1, Latest)

	// The standard schema validates its own headers as the identity map.
	fieldMap, err := StandardV1.ValidateHeaders(StandardV1.FieldHeaders())
	require.NoError(t, err)
	for ix, datumIx := range fieldMap {
		assert.Equal(t, ix, datumIx)
	}

	assert.True(t, StandardV1.HasField(FieldIdentifier))
	assert.True(t, StandardV1.HasField(FieldGeoContainerLon))
	assert.Equal(t, []FieldID{FieldIdentifier}, UniqueKeys)
}
