package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runForOutput(t *testing.T, run func(cmd *cobra.Command, args []string) error, args []string) string {
	t.Helper()
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, run(cmd, args))
	return buf.String()
}

func TestSchemaList(t *testing.T) {
	out := runForOutput(t, runSchemaList, nil)
	assert.Contains(t, out, "sse_initiatives v1")
	assert.Contains(t, out, "22 fields")
}

func TestSchemaShow(t *testing.T) {
	out := runForOutput(t, runSchemaShow, nil)
	assert.Contains(t, out, "Solidarity Economy Initiatives")
	assert.Contains(t, out, "Geo Container Longitude")
}

func TestSchemaShowUnknownVersion(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err := runSchemaShow(cmd, []string{"99"})
	assert.ErrorContains(t, err, "no built-in schema version 99")
}

func TestSchemaCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.yaml")
	doc := `id: survey
name: Survey Export
version: 2
fields:
  - id: approved
    header: Approved
  - id: name
    header: Organisation Name
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out := runForOutput(t, runSchemaCheck, []string{path})
	assert.Contains(t, out, "schema survey v2 OK, 2 fields")
}

func TestSchemaCheckRejectsDuplicateHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `id: bad
name: Bad
fields:
  - id: a
    header: Same
  - id: b
    header: Same
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	assert.Error(t, runSchemaCheck(cmd, []string{path}))
}
