package geocode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "joins non-empty parts",
			parts: []string{"1 High St", "", "Oxford", "OX1 1AA", "United Kingdom"},
			want:  "1 High St, Oxford, OX1 1AA, United Kingdom",
		},
		{
			name:  "postcode special characters spaced",
			parts: []string{"OX1-1AA", "Oxford"},
			want:  "OX1 1AA, Oxford",
		},
		{
			name:  "country code expanded",
			parts: []string{"1 High St", "Oxford", "GB"},
			want:  "1 High St, Oxford, United Kingdom",
		},
		{
			name:  "too short not worth querying",
			parts: []string{"X1"},
			want:  "",
		},
		{
			name:  "empty",
			parts: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSearchKey(tt.parts...))
		})
	}
}

func TestBuildSearchKeyTruncation(t *testing.T) {
	long := strings.Repeat("a", 61)
	key := BuildSearchKey(long, long, "Oxford")

	// Trailing segments drop until the key fits the budget.
	assert.LessOrEqual(t, len(key), maxSearchKeyLen)
	assert.Equal(t, long+", "+long, key)

	// A single over-budget segment cannot be trimmed and yields no key.
	assert.Empty(t, BuildSearchKey(strings.Repeat("b", 200)))
}
