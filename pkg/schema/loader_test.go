package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solidata/solidata/pkg/errors"
)

const testSchemaYAML = `id: schema1
name: Schema 1
version: 2
description: A test schema.
fields:
  - id: apples
    header: Apples
    desc: A fruit
  - id: brussels_sprouts
    header: Brussels Sprouts
  - id: carrots
    header: Carrots
    comment: Not a fruit.
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(testSchemaYAML))
	require.NoError(t, err)

	assert.Equal(t, "schema1", s.ID())
	assert.Equal(t, "Schema 1", s.Name())
	assert.Equal(t, 2, s.Version())
	assert.Equal(t, "A test schema.", s.Description())
	require.Len(t, s.Fields(), 3)
	assert.Equal(t, "A fruit", s.Fields()[0].Desc)
	assert.Equal(t, "Not a fruit.", s.Fields()[2].Comment)
	assert.Equal(t, []string{"Apples", "Brussels Sprouts", "Carrots"}, s.FieldHeaders())
}

func TestParseInvalid(t *testing.T) {
	// Not YAML at all.
	_, err := Parse([]byte("{unclosed"))
	require.Error(t, err)

	// Valid YAML, invalid schema.
	_, err = Parse([]byte("id: schema1\nfields:\n  - id: apples\n"))
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema1.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSchemaYAML), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "schema1", s.ID())
	require.Len(t, s.Fields(), 3)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
