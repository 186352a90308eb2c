package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	known := []string{"borderColor", "borderWidth", "borderRadius", "backgroundColor", "enabled"}

	tests := []struct {
		name     string
		key      string
		limit    int
		expected []string
	}{
		{
			name:     "case-insensitive exact match ranks first",
			key:      "bordercolor",
			limit:    1,
			expected: []string{"borderColor"},
		},
		{
			name:     "typo",
			key:      "enabeld",
			limit:    3,
			expected: []string{"enabled"},
		},
		{
			name:     "nothing similar",
			key:      "totallyUnknownKey",
			limit:    3,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.key, known, tt.limit))
		})
	}
}

func TestRank_Ordering(t *testing.T) {
	ranked := Rank("borderColr", []string{"borderWidth", "borderColor"})

	if assert.NotEmpty(t, ranked) {
		assert.Equal(t, "borderColor", ranked[0].Key)
	}

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}
