package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Acme Coop", "ACMECOOP"},
		{"synonym", "Acme Cooperative", "ACMECOOP"},
		{"punctuation and brackets", "Acme Co-op (Oxford)", "ACMECOOP"},
		{"stop words", "The Handy Cooperative Ltd", "HYCOOP"},
		{"accents", "Société Coopérative", "SOCIETECOOP"},
		{"sccl suffix", "Acme SCCL", "ACME"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestClusterGreedy(t *testing.T) {
	near := func(a, b string) bool {
		diff := 0
		for ix := 0; ix < len(a) && ix < len(b); ix++ {
			if a[ix] != b[ix] {
				diff++
			}
		}
		return diff < 2
	}

	// b is near a, c is near b but not near a: greedy pivots on a, so c
	// starts its own cluster rather than chaining through b.
	clusters := cluster([]string{"aaaa", "aaab", "aabb"}, near)
	assert.Equal(t, [][]string{{"aaaa", "aaab"}, {"aabb"}}, clusters)

	// Every item lands somewhere.
	clusters = cluster([]string{"xxxx"}, near)
	assert.Equal(t, [][]string{{"xxxx"}}, clusters)

	assert.Empty(t, cluster(nil, near))
}
