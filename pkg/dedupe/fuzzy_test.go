package dedupe

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyDeduplicatorIdenticalFingerprint(t *testing.T) {
	// Different external keys, same normalized name, same remaining
	// fields: a genuine fuzzy duplicate.
	in := strings.NewReader(
		"Identifier,Name,Street Address,Website\n" +
			"X1,Acme Coop,1 High St,a.com\n" +
			"X2,ACME CO-OP,1 High St,b.com\n")
	var out strings.Builder

	d := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name")
	report, err := d.Deduplicate(in, &out)
	require.NoError(t, err)

	assert.Equal(t,
		"Identifier,Name,Street Address,Website\n"+
			"X1,Acme Coop,1 High St,a.com;b.com\n",
		out.String())

	require.Len(t, report.ByFields.Groups, 1)
	assert.Len(t, report.ByFields.Groups[0].Rows, 2)
	assert.Empty(t, report.ByKey.Groups)
}

func TestFuzzyDeduplicatorDistanceThreshold(t *testing.T) {
	run := func(t *testing.T, addrA, addrB string) (string, *FuzzyReport) {
		t.Helper()
		in := strings.NewReader(
			"Identifier,Name,Street Address,Website\n" +
				"X1,Acme Coop," + addrA + ",a.com\n" +
				"X2,Acme Coop," + addrB + ",b.com\n")
		var out strings.Builder
		report, err := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name").
			Deduplicate(in, &out)
		require.NoError(t, err)
		return out.String(), report
	}

	t.Run("distance 3 merges", func(t *testing.T) {
		out, report := run(t, "aaaaaaa", "aaaabcd")
		assert.Contains(t, out, "a.com;b.com")
		assert.NotContains(t, out, "X2")
		assert.Len(t, report.ByFields.Groups, 1)
	})

	t.Run("distance 4 does not merge", func(t *testing.T) {
		out, report := run(t, "aaaaaaa", "aaabcde")
		assert.Contains(t, out, "X1")
		assert.Contains(t, out, "X2")
		assert.Empty(t, report.ByFields.Groups)
	})
}

func TestFuzzyDeduplicatorDifferentNames(t *testing.T) {
	// Identical fields but different normalized names never merge.
	in := strings.NewReader(
		"Identifier,Name,Street Address,Website\n" +
			"X1,Acme Coop,1 High St,a.com\n" +
			"X2,Zebra Coop,1 High St,b.com\n")
	var out strings.Builder

	report, err := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name").
		Deduplicate(in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "X1")
	assert.Contains(t, out.String(), "X2")
	assert.Empty(t, report.ByFields.Groups)
}

func TestFuzzyDeduplicatorKeyMergeFirst(t *testing.T) {
	// Rows sharing a key merge in the key phase and are reported there.
	in := strings.NewReader(
		"Identifier,Name,Street Address,Website\n" +
			"X,Acme Coop,1 High St,a.com\n" +
			"X,Acme Coop,1 High St,b.com\n")
	var out strings.Builder

	report, err := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name").
		Deduplicate(in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "X,Acme Coop,1 High St,a.com;b.com\n")
	require.Len(t, report.ByKey.Groups, 1)
	assert.Empty(t, report.ByFields.Groups)
}

func TestFuzzyDeduplicatorNameDefault(t *testing.T) {
	in := strings.NewReader(
		"Identifier,Name,Street Address,Website\n" +
			"X,,1 High St,a.com\n")
	var out strings.Builder

	_, err := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name").
		Deduplicate(in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "X,N/A,1 High St,a.com\n")
}

func TestFuzzyDeduplicatorAddressRestoration(t *testing.T) {
	dir := t.TempDir()
	originalPath := filepath.Join(dir, "original.csv")
	require.NoError(t, os.WriteFile(originalPath, []byte(
		"Identifier,Name,Street Address,Locality,Region,Postcode,Website\n"+
			"X,Acme Coop,1 High Street,Oxford,Oxfordshire,OX1 1AA,a.com\n"), 0o644))

	// The geocoder rewrote the address fields and cleared the postcode.
	in := strings.NewReader(
		"Identifier,Name,Street Address,Locality,Region,Postcode,Website\n" +
			"X,Acme Coop,1 High St,oxford,,,a.com\n")
	var out strings.Builder

	d := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name",
		WithOriginalCSV(originalPath))
	_, err := d.Deduplicate(in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(),
		"X,Acme Coop,1 High Street,Oxford,Oxfordshire,OX1 1AA,a.com\n")
}

func TestFuzzyDeduplicatorMissingColumns(t *testing.T) {
	in := strings.NewReader("Identifier,Name\nX,Acme\n")
	var out strings.Builder

	_, err := NewFuzzyDeduplicator([]string{"Identifier"}, "Website", "Name").
		Deduplicate(in, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Website")
}
