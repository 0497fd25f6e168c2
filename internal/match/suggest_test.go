package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categories = []string{
	"seed", "soil", "fertilizer", "water", "light", "temperature", "humidity", "location",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		limit    int
		expected []string
	}{
		{"typo", "soyl", 3, []string{"soil"}},
		{"case only", "Water", 3, []string{"water"}},
		{"dropped letter", "temprature", 1, []string{"temperature"}},
		{"nothing close", "zzz", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.query, categories, tt.limit))
		})
	}
}

func TestRank_OrderAndDedup(t *testing.T) {
	ranked := Rank("seed", []string{"soil", "seed", "seed", "weed", "need"})
	require.Len(t, ranked, 4)

	assert.Equal(t, "seed", ranked[0].Name)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.0001)

	// equal scores fall back to name order
	assert.Equal(t, "need", ranked[1].Name)
	assert.Equal(t, "weed", ranked[2].Name)
	assert.Equal(t, "soil", ranked[3].Name)
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("seed", []string{"weed", "need", "feed"}, 2)
	assert.Equal(t, []string{"feed", "need"}, got)

	got = Suggest("seed", []string{"weed", "need", "feed"}, 0)
	assert.Len(t, got, 3)
}
